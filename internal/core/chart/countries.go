package chart

// nocToISO maps IOC country codes to ISO 3166-1 numeric ids used by world-110m
// historic committees map onto their successor state
var nocToISO = map[string]int{
	"AFG": 4, "ALB": 8, "ALG": 12, "AND": 20, "ANG": 24, "ARG": 32, "ARM": 51,
	"AUS": 36, "AUT": 40, "AZE": 31, "BAH": 44, "BAN": 50, "BAR": 52, "BEL": 56,
	"BLR": 112, "BOL": 68, "BIH": 70, "BOT": 72, "BRA": 76, "BUL": 100, "CAN": 124,
	"CHI": 152, "CHN": 156, "CIV": 384, "CMR": 120, "COD": 180, "COL": 170,
	"CRC": 188, "CRO": 191, "CUB": 192, "CYP": 196, "CZE": 203, "TCH": 203,
	"DEN": 208, "DOM": 214, "ECU": 218, "EGY": 818, "ESP": 724, "EST": 233,
	"ETH": 231, "FIN": 246, "FRA": 250, "GBR": 826, "GEO": 268, "GER": 276,
	"FRG": 276, "GDR": 276, "GHA": 288, "GRE": 300, "GUA": 320, "HUN": 348,
	"INA": 360, "IND": 356, "IRI": 364, "IRL": 372, "IRQ": 368, "ISL": 352,
	"ISR": 376, "ITA": 380, "JAM": 388, "JOR": 400, "JPN": 392, "KAZ": 398,
	"KEN": 404, "KGZ": 417, "KOR": 410, "KSA": 682, "LAT": 428, "LBN": 422,
	"LTU": 440, "LUX": 442, "MAR": 504, "MAS": 458, "MDA": 498, "MEX": 484,
	"MGL": 496, "MKD": 807, "MNE": 499, "MOZ": 508, "NAM": 516, "NED": 528,
	"NGR": 566, "NOR": 578, "NZL": 554, "PAK": 586, "PAN": 591, "PER": 604,
	"PHI": 608, "POL": 616, "POR": 620, "PRK": 408, "PUR": 630, "QAT": 634,
	"ROU": 642, "RSA": 710, "RUS": 643, "URS": 643, "EUN": 643, "SEN": 686,
	"SRB": 688, "YUG": 688, "SCG": 688, "SLO": 705, "SVK": 703, "SUI": 756,
	"SWE": 752, "SYR": 760, "THA": 764, "TJK": 762, "TKM": 795, "TPE": 158,
	"TUN": 788, "TUR": 792, "UAE": 784, "UGA": 800, "UKR": 804, "URU": 858,
	"USA": 840, "UZB": 860, "VEN": 862, "VIE": 704, "ZAM": 894, "ZIM": 716,
}

// ISONumeric returns the ISO 3166-1 numeric id for an IOC code
func ISONumeric(noc string) (int, bool) {
	id, ok := nocToISO[noc]
	return id, ok
}
