package booking

// DefaultCityCodes maps lower-case city names to IATA airport/city codes.
var DefaultCityCodes = map[string]string{
	"delhi":         "DEL",
	"mumbai":        "BOM",
	"bangalore":     "BLR",
	"hyderabad":     "HYD",
	"chennai":       "MAA",
	"kolkata":       "CCU",
	"ahmedabad":     "AMD",
	"pune":          "PNQ",
	"jaipur":        "JAI",
	"lucknow":       "LKO",
	"kochi":         "COK",
	"goa":           "GOI",
	"indore":        "IDR",
	"chandigarh":    "IXC",
	"bhopal":        "BHO",
	"visakhapatnam": "VTZ",
	"guwahati":      "GAU",
	"nagpur":        "NAG",
	"varanasi":      "VNS",
	"bhubaneswar":   "BBI",
	"surat":         "STV",
	"amritsar":      "ATQ",
	"trivandrum":    "TRV",
	"patna":         "PAT",
	"coimbatore":    "CJB",
	"vadodara":      "BDQ",
	"rajkot":        "RAJ",
	"raipur":        "RPR",
	"mangalore":     "IXE",
	"ranchi":        "IXR",
	"jodhpur":       "JDH",
	"madurai":       "IXM",
	"dehradun":      "DED",
	"jammu":         "IXJ",
	"srinagar":      "SXR",
	"imphal":        "IMF",
	"agartala":      "IXA",
	"mysore":        "MYQ",
	"udaipur":       "UDR",
	"gorakhpur":     "GOP",
	"dibrugarh":     "DIB",
	"silchar":       "IXS",
	"tirupati":      "TIR",
	"pondicherry":   "PNY",
	"hubli":         "HBX",
	"kanpur":        "KNU",
	"dimapur":       "DMU",
	"shillong":      "SHL",
	"aizawl":        "AJL",
}
