package teams

// MLB alias table: canonical full name -> accepted aliases. Nicknames and
// standard three-letter codes; city-only forms are omitted where ambiguous
// (New York, Los Angeles, Chicago).
var mlbTeams = map[string][]string{
	"Arizona Diamondbacks":  {"Diamondbacks", "D-backs", "Dbacks", "AZ", "ARI"},
	"Atlanta Braves":        {"Braves", "ATL"},
	"Baltimore Orioles":     {"Orioles", "O's", "BAL"},
	"Boston Red Sox":        {"Red Sox", "BOS"},
	"Chicago Cubs":          {"Cubs", "CHC"},
	"Chicago White Sox":     {"White Sox", "CWS", "CHW"},
	"Cincinnati Reds":       {"Reds", "CIN"},
	"Cleveland Guardians":   {"Guardians", "CLE"},
	"Colorado Rockies":      {"Rockies", "COL"},
	"Detroit Tigers":        {"Tigers", "DET"},
	"Houston Astros":        {"Astros", "HOU"},
	"Kansas City Royals":    {"Royals", "KC", "KCR"},
	"Los Angeles Angels":    {"Angels", "LAA"},
	"Los Angeles Dodgers":   {"Dodgers", "LAD"},
	"Miami Marlins":         {"Marlins", "MIA"},
	"Milwaukee Brewers":     {"Brewers", "MIL"},
	"Minnesota Twins":       {"Twins", "MIN"},
	"New York Mets":         {"Mets", "NYM"},
	"New York Yankees":      {"Yankees", "NYY"},
	"Oakland Athletics":     {"Athletics", "A's", "OAK"},
	"Philadelphia Phillies": {"Phillies", "PHI"},
	"Pittsburgh Pirates":    {"Pirates", "PIT"},
	"San Diego Padres":      {"Padres", "SD", "SDP"},
	"San Francisco Giants":  {"Giants", "SF", "SFG"},
	"Seattle Mariners":      {"Mariners", "SEA"},
	"St. Louis Cardinals":   {"Cardinals", "St Louis Cardinals", "STL"},
	"Tampa Bay Rays":        {"Rays", "TB", "TBR"},
	"Texas Rangers":         {"Rangers", "TEX"},
	"Toronto Blue Jays":     {"Blue Jays", "Jays", "TOR"},
	"Washington Nationals":  {"Nationals", "Nats", "WSH"},
}
