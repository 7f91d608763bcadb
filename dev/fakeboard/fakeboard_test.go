package fakeboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"noticeboard-tally/lib/scrapers/noticeboard"
	"noticeboard-tally/services/tally"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministic(t *testing.T) {
	diff := cmp.Diff(Generate(7, 30, 10), Generate(7, 30, 10))
	require.Empty(t, diff)
	require.Equal(t, 3, Generate(7, 30, 10).Pages())
	require.Equal(t, 4, Generate(7, 31, 10).Pages())
}

func TestHandlerRequiresSession(t *testing.T) {
	board := Generate(1, 5, 5)
	server := httptest.NewServer(board.Handler())
	defer server.Close()

	res, err := http.Get(server.URL + noticeboard.DefaultListingPath)
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestScrapeMatchesGeneratedBoard(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42} {
		board := Generate(seed, 45, 10)
		server := httptest.NewServer(board.Handler())

		client, err := noticeboard.NewClient(noticeboard.ClientOptions{
			BaseUrl: server.URL,
			Session: board.Session,
		})
		require.NoError(t, err)

		for _, mode := range []tally.Mode{tally.ModePPO, tally.ModeIntern} {
			result, err := tally.Scrape(context.Background(), client, tally.Options{
				Mode:     mode,
				MaxPages: tally.DefaultMaxPages,
			})
			require.NoError(t, err)

			diff := cmp.Diff(board.Expected(mode), result.Companies)
			require.Empty(t, diff, "seed %d, mode %s", seed, mode)
			require.Equal(t, result.Companies.Sum(), result.Totals)
			require.Equal(t, board.Pages()+1, result.PagesVisited)

			matching := 0
			for _, topic := range board.Topics {
				if topic.Mode == mode {
					matching++
				}
			}
			require.Equal(t, matching, result.ThreadsChecked)
		}

		client.Close()
		server.Close()
	}
}
