package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/dream-journal/internal/command"
	"github.com/jbeshir/dream-journal/internal/datasources"
	"github.com/jbeshir/dream-journal/internal/domain"
	"github.com/jbeshir/dream-journal/internal/transport/web/controller"
)

// Commands are the use cases served over HTTP.
type Commands struct {
	ListDreams       command.Command[command.ListDreamsRequest, []domain.Dream]
	ListSharedDreams command.Command[command.ListSharedDreamsRequest, []domain.Dream]
	CreateDream      command.Command[command.CreateDreamRequest, domain.Dream]
	GetDream         command.Command[command.GetDreamRequest, domain.Dream]
	UpdateDream      command.Command[command.UpdateDreamRequest, domain.Dream]
	DeleteDream      command.Command[command.DeleteDreamRequest, command.Empty]
	SetDreamShares   command.Command[command.SetDreamSharesRequest, []string]
	InterpretDream   command.Command[command.InterpretDreamRequest, domain.Dream]
	ListSimilar      command.Command[command.ListSimilarDreamsRequest, []domain.SimilarDream]
	EnsureEmbeddings command.Command[command.EnsureDreamEmbeddingsRequest, command.BackfillEmbeddingsResult]
	ListPatterns     command.Command[command.ListDreamPatternsRequest, domain.DreamPatterns]
	GetPatterns      command.Command[command.GetAnalysisRequest, *domain.PatternAnalysis]
	AnalysePatterns  command.Command[command.AnalysePatternsRequest, domain.PatternAnalysis]
	GetThemes        command.Command[command.GetAnalysisRequest, *domain.ThemeAnalysis]
	AnalyseThemes    command.Command[command.AnalyseTopThemesRequest, domain.ThemeAnalysis]
	GetStreaks       command.Command[command.GetStreaksRequest, domain.StreakStats]
	GetCalendar      command.Command[command.GetCalendarRequest, command.CalendarMonth]
	CreateAPIToken   command.Command[command.CreateAPITokenRequest, command.CreateAPITokenResponse]
}

func MakeRouter(
	cmds Commands,
	tokens interface {
		datasources.UserAPITokenLister
		datasources.APITokenRevoker
	},
	rssFeedBaseURL string,
	defaultLocation *time.Location,
	insightCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	authed := func(method string, path string, h http.Handler) {
		r.Handle(path, requireAuthMiddleware(h)).Methods(method, http.MethodOptions)
	}

	authed(http.MethodGet, "/v1/dreams", controller.DreamsList{ListCmd: cmds.ListDreams})
	authed(http.MethodPost, "/v1/dreams", controller.DreamCreate{CreateCmd: cmds.CreateDream})
	// Registered before /v1/dreams/{dream_id} so "shared" is not read as an ID.
	authed(http.MethodGet, "/v1/dreams/shared", controller.SharedDreamsList{ListCmd: cmds.ListSharedDreams})
	authed(http.MethodGet, "/v1/dreams/{dream_id}", controller.DreamGet{GetCmd: cmds.GetDream})
	authed(http.MethodPut, "/v1/dreams/{dream_id}", controller.DreamUpdate{UpdateCmd: cmds.UpdateDream})
	authed(http.MethodDelete, "/v1/dreams/{dream_id}", controller.DreamDelete{DeleteCmd: cmds.DeleteDream})
	authed(http.MethodPut, "/v1/dreams/{dream_id}/shares", controller.DreamSharesSet{SetSharesCmd: cmds.SetDreamShares})
	authed(http.MethodPost, "/v1/dreams/{dream_id}/interpret", controller.DreamInterpret{InterpretCmd: cmds.InterpretDream})
	authed(http.MethodGet, "/v1/dreams/{dream_id}/similar", controller.SimilarDreamsList{SimilarCmd: cmds.ListSimilar})

	authed(http.MethodPost, "/v1/embeddings/backfill", controller.EmbeddingsBackfill{EnsureCmd: cmds.EnsureEmbeddings})

	authed(http.MethodGet, "/v1/patterns", controller.DreamPatternsGet{PatternsCmd: cmds.ListPatterns})
	authed(http.MethodGet, "/v1/patterns/analysis", controller.PatternAnalysisGet{GetCmd: cmds.GetPatterns})
	authed(http.MethodPost, "/v1/patterns/analysis", controller.PatternAnalysisRun{AnalyseCmd: cmds.AnalysePatterns})
	authed(http.MethodGet, "/v1/themes/analysis", controller.ThemeAnalysisGet{GetCmd: cmds.GetThemes})
	authed(http.MethodPost, "/v1/themes/analysis", controller.ThemeAnalysisRun{AnalyseCmd: cmds.AnalyseThemes})

	authed(http.MethodGet, "/v1/stats/streaks", controller.StreaksGet{
		StreaksCmd:      cmds.GetStreaks,
		DefaultLocation: defaultLocation,
	})
	authed(http.MethodGet, "/v1/calendar", controller.CalendarGet{
		CalendarCmd:     cmds.GetCalendar,
		DefaultLocation: defaultLocation,
	})
	r.Handle("/v1/insights/daily", controller.DailyInsightGet{
		DefaultLocation: defaultLocation,
		CacheMaxAge:     insightCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	authed(http.MethodGet, "/v1/rss", controller.DreamsRSS{
		FeedBaseURL: rssFeedBaseURL,
		FeedPath:    "/v1/rss",
		ListCmd:     cmds.ListDreams,
	})

	authed(http.MethodPost, "/v1/tokens", controller.APITokenCreate{CreateCmd: cmds.CreateAPIToken})
	authed(http.MethodGet, "/v1/tokens", controller.APITokenList{TokenLister: tokens})
	authed(http.MethodDelete, "/v1/tokens/{token_id}", controller.APITokenRevoke{TokenRevoker: tokens})

	return r, nil
}
