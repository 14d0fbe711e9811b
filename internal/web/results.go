package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ResultsView shows the final standings, the per-question breakdown and a
// summary that is fetched once the page has loaded.
func ResultsView(data ResultsData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageHead(w, "Trivia Titans results")
		write(w, `      <header class="hero">
        <span class="tag">Results</span>
        <h1>And the winner is...</h1>
        <p class="muted">`, esc(data.Mode), ` &middot; `, esc(data.PlayedAt), `</p>
      </header>
`)
		if data.Notice != "" {
			write(w, `      <div class="notice">`, esc(data.Notice), `</div>
`)
		}
		write(w, `      <section class="panel">
        <table>
`)
		for _, st := range data.Standings {
			cls := ""
			if st.Leader {
				cls = ` class="leader"`
			}
			write(w, `          <tr`, cls, `><td>#`, itoa(st.Rank), `</td><td>`, esc(st.Glyph), ` `, esc(st.Name), `</td><td>`, itoa(st.Score), `</td></tr>
`)
		}
		write(w, `        </table>
      </section>
      <section class="panel">
        <h2>Game recap</h2>
        <p id="summary" class="muted" data-summary-url="`, esc(data.SummaryURL), `" data-local-game="`, esc(data.LocalGame), `">Writing the recap...</p>
      </section>
`)
		for _, entry := range data.History {
			write(w, `      <section class="panel">
        <p class="muted">Question `, itoa(entry.Number), ` &middot; `, esc(entry.Category), `</p>
        <p class="question">`, esc(entry.Question), `</p>
        <p class="correct">`, esc(entry.CorrectAnswer), `</p>
        <ul>
`)
			for _, answer := range entry.Answers {
				cls := "incorrect"
				if answer.IsCorrect {
					cls = "correct"
				}
				write(w, `          <li>`, esc(answer.Name), `: <span class="`, cls, `">`, esc(answer.Answer), `</span></li>
`)
			}
			write(w, `        </ul>
      </section>
`)
		}
		if data.QRURL != "" {
			write(w, `      <section class="panel">
        <p class="muted">Scan to keep these results</p>
        <img src="`, esc(data.QRURL), `" alt="QR code for these results" width="240" height="240"/>
      </section>
`)
		}
		write(w, `      <p class="actions"><a class="button" href="/">Play again</a></p>
    <script>
      (async () => {
        const summary = document.getElementById("summary");
        const summaryURL = summary.dataset.summaryUrl;
        const localGame = summary.dataset.localGame;
        let text = "";
        try {
          let res;
          if (localGame) {
            res = await fetch("/api/results/local/summary", {
              method: "POST",
              headers: { "Content-Type": "application/json" },
              body: JSON.stringify({ game: localGame })
            });
          } else {
            res = await fetch(summaryURL);
          }
          if (res.ok) {
            const data = await res.json();
            text = data.summary || "";
          }
        } catch (err) {
          text = "";
        }
        summary.textContent = text || "Could not generate an AI summary for this game.";
        summary.className = "";
      })();
    </script>
`)
		pageFoot(w)
		return nil
	})
}

// ResultsError replaces the results page when the game cannot be loaded.
func ResultsError(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageHead(w, "Trivia Titans results")
		write(w, `      <section class="panel">
        <h1>Could not load results</h1>
        <p class="muted">`, esc(message), `</p>
        <p><a href="/">Start a new game</a></p>
      </section>
`)
		pageFoot(w)
		return nil
	})
}
