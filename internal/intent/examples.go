package intent

// DefaultExamples is the closed set of intents and their labelled example
// phrases. The classifier is fitted over this set once at startup; adding a
// phrase here is the only way to teach it new routes.
var DefaultExamples = map[string][]string{
	"my-team-summary": {
		"show my team",
		"display my squad",
		"what is my lineup",
		"give me squad summary",
	},
	"ai-team-performance": {
		"how will my team perform next week",
		"predict my squad score",
		"forecast my team points",
		"how did i score this week",
		"how did i do this week",
	},
	"smart-captaincy": {
		"who should i captain",
		"captain suggestion",
		"best captain pick",
	},
	"current-captain": {
		"who is my captain",
		"current captain",
		"who is captain right now",
	},
	"chip-advice": {
		"when should i use my chips",
		"chip strategy",
		"bench boost or triple captain",
		"should i free hit",
		"wildcard advice",
	},
	"transfer-suggester": {
		"recommend a transfer",
		"who should i sell",
		"transfer advice",
	},
	"injury-risk": {
		"any injury risks",
		"who is flagged",
		"players with injury",
	},
	"ai-predictions": {
		"ai top performers",
		"who will score the most",
		"best players next week",
	},
	"league-head-to-head": {
		"will i beat",
		"head to head",
		"versus in my league",
	},
	"league-current": {
		"current league standings",
		"show table now",
		"league position right now",
	},
	"league-predictions": {
		"predict my league",
		"league standings forecast",
	},
	"differential-hunter": {
		"show me differentials",
		"low owned players",
	},
	"predicted-top-performers": {
		"predict top performers",
		"top scorers next week",
	},
	"dream-team": {
		"build dream team",
		"wildcard squad",
	},
	"quadrant-analysis": {
		"form vs fixture",
		"quadrant analysis",
	},
}
