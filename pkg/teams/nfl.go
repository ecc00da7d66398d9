package teams

// NFL alias table. "Cardinals" and "Giants" also exist in the MLB namespace;
// the per-league maps keep both definitions alive instead of overwriting.
var nflTeams = map[string][]string{
	"Arizona Cardinals":    {"Cardinals", "ARI Cardinals"},
	"Atlanta Falcons":      {"Falcons"},
	"Baltimore Ravens":     {"Ravens"},
	"Buffalo Bills":        {"Bills", "BUF"},
	"Carolina Panthers":    {"Panthers", "CAR"},
	"Chicago Bears":        {"Bears"},
	"Cincinnati Bengals":   {"Bengals"},
	"Cleveland Browns":     {"Browns"},
	"Dallas Cowboys":       {"Cowboys"},
	"Denver Broncos":       {"Broncos"},
	"Detroit Lions":        {"Lions"},
	"Green Bay Packers":    {"Packers", "GB"},
	"Houston Texans":       {"Texans"},
	"Indianapolis Colts":   {"Colts"},
	"Jacksonville Jaguars": {"Jaguars", "Jags", "JAX"},
	"Kansas City Chiefs":   {"Chiefs"},
	"Las Vegas Raiders":    {"Raiders", "LV"},
	"Los Angeles Chargers": {"Chargers"},
	"Los Angeles Rams":     {"Rams"},
	"Miami Dolphins":       {"Dolphins"},
	"Minnesota Vikings":    {"Vikings"},
	"New England Patriots": {"Patriots", "Pats", "NE"},
	"New Orleans Saints":   {"Saints", "NO Saints"},
	"New York Giants":      {"NY Giants", "NYG"},
	"New York Jets":        {"Jets", "NYJ"},
	"Philadelphia Eagles":  {"Eagles"},
	"Pittsburgh Steelers":  {"Steelers"},
	"San Francisco 49ers":  {"49ers", "Niners"},
	"Seattle Seahawks":     {"Seahawks"},
	"Tampa Bay Buccaneers": {"Buccaneers", "Bucs"},
	"Tennessee Titans":     {"Titans", "TEN"},
	"Washington Commanders": {"Commanders", "WSH Commanders"},
}
