package webpath

const (
	Home = "/"

	Api          = "/api"
	ApiHome      = Api + Home
	ApiMatches   = Api + "/matches"
	ApiMatch     = ApiMatches + "/:id"
	ApiThrows    = ApiMatch + "/throws"
	ApiRebuild   = ApiMatch + "/rebuild"
	ApiPlayers   = Api + "/players"
	ApiRatings   = Api + "/ratings"
	ApiTargets   = Api + "/targets"
)

func Path() map[string]string {
	return map[string]string{
		"Home":       Home,
		"Api":        Api,
		"ApiMatches": ApiMatches,
		"ApiMatch":   ApiMatch,
		"ApiThrows":  ApiThrows,
		"ApiRebuild": ApiRebuild,
		"ApiPlayers": ApiPlayers,
		"ApiRatings": ApiRatings,
		"ApiTargets": ApiTargets,
	}
}
