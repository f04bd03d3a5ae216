package style

// Brand palette.
var (
	colorForest     = mustHex("#1a472a")
	colorGreen      = mustHex("#2c5f2d")
	colorInk        = mustHex("#333333")
	colorSlate      = mustHex("#444444")
	colorGrid       = mustHex("#cccccc")
	colorBand       = mustHex("#f5f5f5")
	colorWhite      = RGB{R: 255, G: 255, B: 255}
	colorWhiteSmoke = RGB{R: 245, G: 245, B: 245}
)

func defaultSpecs() map[Name]Spec {
	return map[Name]Spec{
		Heading2: {
			FontFamily:    "Helvetica",
			FontStyle:     "B",
			FontSizePt:    20,
			LeadingPt:     22,
			TextColor:     colorForest,
			SpaceBeforePt: 12,
			SpaceAfterPt:  20,
			Alignment:     AlignLeft,
		},
		Heading3: {
			FontFamily:    "Helvetica",
			FontStyle:     "B",
			FontSizePt:    14,
			LeadingPt:     18,
			TextColor:     colorGreen,
			SpaceBeforePt: 16,
			SpaceAfterPt:  12,
		},
		Heading4: {
			FontFamily:    "Helvetica",
			FontStyle:     "B",
			FontSizePt:    12,
			LeadingPt:     14.4,
			TextColor:     colorGreen,
			SpaceBeforePt: 12,
			SpaceAfterPt:  10,
		},
		BodyText: {
			FontFamily:   "Helvetica",
			FontSizePt:   11,
			LeadingPt:    16,
			TextColor:    colorInk,
			SpaceAfterPt: 8,
			Alignment:    AlignLeft,
		},
		BulletText: {
			FontFamily:   "Helvetica",
			FontSizePt:   11,
			LeadingPt:    15,
			TextColor:    colorSlate,
			LeftIndentPt: 20,
			SpaceAfterPt: 6,
		},
	}
}

func defaultTable() TableSpec {
	return TableSpec{
		HeaderFill:      colorGreen,
		HeaderText:      colorWhiteSmoke,
		HeaderFont:      "Helvetica",
		HeaderFontStyle: "B",
		HeaderSizePt:    11,
		HeaderPaddingPt: 10,

		BodyText:      colorInk,
		BodyFont:      "Helvetica",
		BodySizePt:    10,
		BodyPaddingPt: 3,

		CellPaddingXPt: 6,

		RowFills: [2]RGB{colorWhite, colorBand},

		GridWidthPt: 0.75,
		GridColor:   colorGrid,
		BoxWidthPt:  1.5,
		BoxColor:    colorGreen,
	}
}

// Default returns the built-in registry.
func Default() *Registry {
	r, err := New(defaultSpecs(), defaultTable())
	if err != nil {
		panic("style: invalid built-in palette: " + err.Error())
	}
	return r
}
