package teams

// NBA alias table, same shape as basketball reference feeds use.
var nbaTeams = map[string][]string{
	"Atlanta Hawks":          {"Hawks"},
	"Boston Celtics":         {"Celtics", "BOS Celtics"},
	"Brooklyn Nets":          {"Nets", "BKN"},
	"Charlotte Hornets":      {"Hornets", "CHA"},
	"Chicago Bulls":          {"Bulls", "CHI Bulls"},
	"Cleveland Cavaliers":    {"Cavaliers", "Cavs"},
	"Dallas Mavericks":       {"Mavericks", "Mavs", "DAL"},
	"Denver Nuggets":         {"Nuggets", "DEN"},
	"Detroit Pistons":        {"Pistons"},
	"Golden State Warriors":  {"Warriors", "GSW"},
	"Houston Rockets":        {"Rockets"},
	"Indiana Pacers":         {"Pacers", "IND"},
	"Los Angeles Clippers":   {"Clippers", "LAC"},
	"Los Angeles Lakers":     {"Lakers", "LAL"},
	"Memphis Grizzlies":      {"Grizzlies", "MEM"},
	"Miami Heat":             {"Heat"},
	"Milwaukee Bucks":        {"Bucks"},
	"Minnesota Timberwolves": {"Timberwolves", "Wolves"},
	"New Orleans Pelicans":   {"Pelicans", "NOP"},
	"New York Knicks":        {"Knicks", "NYK"},
	"Oklahoma City Thunder":  {"Thunder", "OKC"},
	"Orlando Magic":          {"Magic", "ORL"},
	"Philadelphia 76ers":     {"76ers", "Sixers"},
	"Phoenix Suns":           {"Suns", "PHX"},
	"Portland Trail Blazers": {"Trail Blazers", "Blazers", "POR"},
	"Sacramento Kings":       {"Kings", "SAC"},
	"San Antonio Spurs":      {"Spurs", "SAS"},
	"Toronto Raptors":        {"Raptors"},
	"Utah Jazz":              {"Jazz", "UTA"},
	"Washington Wizards":     {"Wizards", "WAS"},
}
