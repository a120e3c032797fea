package colors

// palette holds the Kanagawa colors shared by the wave, dragon and lotus presets
var palette = struct {
	// Wave
	sumiInk0, sumiInk3, sumiInk4, sumiInk5, sumiInk6 string
	waveBlue1, waveBlue2                             string
	winterBlue, winterYellow, winterRed              string
	fujiWhite, fujiGray, oldWhite                    string
	oniViolet, crystalBlue, springBlue, waveAqua2    string
	springGreen, autumnGreen, autumnRed, peachRed    string
	roninYellow, carpYellow, samuraiRed, sakuraPink  string

	// Dragon
	dragonBlack1, dragonBlack3, dragonBlack4, dragonBlack6 string
	dragonWhite, dragonAsh, dragonViolet, dragonAqua       string
	dragonBlue, dragonBlue2, dragonGreen2, dragonRed       string
	dragonYellow                                           string

	// Lotus
	lotusWhite2, lotusWhite3, lotusWhite4, lotusWhite5 string
	lotusInk1, lotusGray3, lotusViolet4, lotusBlue4    string
	lotusGreen, lotusRed, lotusYellow3, lotusAqua      string
	lotusPink, lotusCyan                               string
}{
	sumiInk0: "#16161D", sumiInk3: "#1F1F28", sumiInk4: "#2A2A37", sumiInk5: "#363646", sumiInk6: "#54546D",
	waveBlue1: "#223249", waveBlue2: "#2D4F67",
	winterBlue: "#252535", winterYellow: "#49443C", winterRed: "#43242B",
	fujiWhite: "#DCD7BA", fujiGray: "#727169", oldWhite: "#C8C093",
	oniViolet: "#957FB8", crystalBlue: "#7E9CD8", springBlue: "#7FB4CA", waveAqua2: "#7AA89F",
	springGreen: "#98BB6C", autumnGreen: "#76946A", autumnRed: "#C34043", peachRed: "#FF5D62",
	roninYellow: "#FF9E3B", carpYellow: "#E6C384", samuraiRed: "#E82424", sakuraPink: "#D27E99",

	dragonBlack1: "#0D0C0C", dragonBlack3: "#181616", dragonBlack4: "#282727", dragonBlack6: "#625E5A",
	dragonWhite: "#C5C9C5", dragonAsh: "#737C73", dragonViolet: "#8992A7", dragonAqua: "#8EA4A2",
	dragonBlue: "#658594", dragonBlue2: "#8BA4B0", dragonGreen2: "#8A9A7B", dragonRed: "#C4746E",
	dragonYellow: "#C4B28A",

	lotusWhite2: "#E5DDB0", lotusWhite3: "#F2ECBC", lotusWhite4: "#E7DBA0", lotusWhite5: "#E4D794",
	lotusInk1: "#545464", lotusGray3: "#8A8980", lotusViolet4: "#624C83", lotusBlue4: "#4D699B",
	lotusGreen: "#6F894E", lotusRed: "#C84053", lotusYellow3: "#DE9800", lotusAqua: "#597B75",
	lotusPink: "#B35B79", lotusCyan: "#D7E3D8",
}
