package function

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"voice-intent/internal/model"
	pkgLog "voice-intent/pkg/log"
)

type playMusicHandler struct {
	l       pkgLog.Logger
	catalog Catalog
}

// NewPlayMusic picks a song from catalog.
func NewPlayMusic(l pkgLog.Logger, catalog Catalog) Handler {
	return &playMusicHandler{l: l, catalog: catalog}
}

func (h *playMusicHandler) Descriptor() model.FunctionDescriptor {
	return model.FunctionDescriptor{
		Name:        NamePlayMusic,
		Description: "Sing a song or play music. Use it when the user asks to play a song, listen to music or hear a specific track.",
		Parameters: []model.Parameter{
			{Name: "song_name", Type: "string", Description: "The song to play. Use \"random\" when no specific song was requested."},
		},
		Required: []string{"song_name"},
	}
}

func (h *playMusicHandler) Execute(ctx context.Context, _ Conn, args map[string]any) (model.ActionResult, error) {
	query, _ := args["song_name"].(string)

	var names []string
	if h.catalog != nil {
		names = h.catalog.Names()
	}
	if len(names) == 0 {
		return model.ActionResult{
			Action:   model.ActionResponse,
			Result:   "music library is empty",
			Response: "Sorry, there is no music available right now.",
		}, nil
	}

	song, ok := MatchSong(names, query)
	if !ok {
		return model.ActionResult{
			Action:   model.ActionResponse,
			Result:   fmt.Sprintf("no song matches %q", query),
			Response: fmt.Sprintf("Sorry, I couldn't find %s.", query),
		}, nil
	}

	h.l.Infof(ctx, "function.play_music: query=%q song=%q", query, song)

	return model.ActionResult{
		Action:   model.ActionResponse,
		Result:   song,
		Response: "Now playing " + song,
	}, nil
}

// MatchSong finds query in names: exact (case-insensitive) first, then
// substring. "random" or an empty query picks any song.
func MatchSong(names []string, query string) (string, bool) {
	if len(names) == 0 {
		return "", false
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || q == randomSong {
		return names[rand.IntN(len(names))], true
	}

	for _, n := range names {
		if strings.ToLower(n) == q {
			return n, true
		}
	}
	for _, n := range names {
		ln := strings.ToLower(n)
		if strings.Contains(ln, q) || strings.Contains(q, ln) {
			return n, true
		}
	}

	return "", false
}
