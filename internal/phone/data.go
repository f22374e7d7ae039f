package phone

// Carrier prefix tables following the published Chinese numbering plans.
// The union list order is fixed; the 4-character "1440" data-card prefix
// appears only there, not in the per-carrier lists.

var allPrefixes = []string{
	// mobile
	"134", "135", "136", "137", "138", "139",
	"150", "151", "152", "157", "158", "159",
	"182", "183", "184", "187", "188",
	"195", "197", "198",
	"147", "1440", // data cards

	// unicom
	"130", "131", "132",
	"145", "155", "156",
	"166", "175", "176",
	"185", "186",

	// telecom
	"133", "149",
	"153", "173", "174",
	"177", "180", "181", "189",
	"190", "191", "193", "199",

	// virtual operators
	"170", "171", "162",
}

var mobilePrefixes = []string{
	"134", "135", "136", "137", "138", "139",
	"150", "151", "152", "157", "158", "159",
	"182", "183", "184", "187", "188",
	"195", "197", "198", "147",
}

var unicomPrefixes = []string{
	"130", "131", "132", "145", "155", "156",
	"166", "175", "176", "185", "186",
}

var telecomPrefixes = []string{
	"133", "149", "153", "173", "174",
	"177", "180", "181", "189",
	"190", "191", "193", "199",
}

var virtualPrefixes = []string{
	"170", "171", "162",
}
