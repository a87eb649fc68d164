package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/dream-journal/internal/command"
	"github.com/jbeshir/dream-journal/internal/domain"
)

const (
	rssFeedPageSize       = 50
	rssDescriptionMaxRune = 280
)

// DreamsRSS serves the caller's own journal as an RSS feed, newest first.
// It sits behind auth, so feed readers use an API token.
type DreamsRSS struct {
	FeedBaseURL string
	FeedPath    string
	ListCmd     command.Command[command.ListDreamsRequest, []domain.Dream]
	Now         func() time.Time
}

func (c DreamsRSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	userID := domain.UserIDFromContext(ctx)

	dreams, err := c.ListCmd.Execute(ctx, command.ListDreamsRequest{
		OwnerID:  userID,
		Page:     1,
		PageSize: rssFeedPageSize,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to fetch dreams for feed", err)
		return
	}

	feed := &feeds.Feed{
		Title:       "Dream Journal",
		Link:        &feeds.Link{Href: c.FeedBaseURL + c.FeedPath},
		Description: "Your most recent dreams",
		Created:     now(c.Now),
	}

	for _, d := range dreams {
		updated := d.UpdatedAt
		if updated.IsZero() {
			updated = d.CreatedAt
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          d.ID,
			IsPermaLink: "false",
			Title:       d.Title,
			Link:        &feeds.Link{Href: c.FeedBaseURL + "/v1/dreams/" + d.ID},
			Description: truncateRunes(d.Body, rssDescriptionMaxRune),
			Created:     d.CreatedAt,
			Updated:     updated,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", "private, no-cache")

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

func truncateRunes(s string, limit int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= limit {
		return string(runes)
	}
	return strings.TrimSpace(string(runes[:limit])) + "…"
}
