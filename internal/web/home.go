package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Home is the setup screen: pick the mode and question source, then open
// a lobby on the shared screen.
func Home(data HomeData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageHead(w, "Trivia Titans")
		write(w, `      <header class="hero">
        <span class="tag">Trivia Titans</span>
        <h1>Pass the screen. Prove your brain.</h1>
        <p class="muted">Up to 9 players share one screen and race through the questions.</p>
      </header>
`)
		if data.Flash != "" {
			write(w, `      <div class="flash">`, esc(data.Flash), `</div>
`)
		}
		write(w, `      <section class="panel">
        <h2>New game</h2>
        <form id="createForm" class="row">
          <label>Mode
            <select name="mode">`)
		writeOption(w, "free-for-all", "Free for all", data.Mode)
		writeOption(w, "rotating-turn", "Rotating turns", data.Mode)
		write(w, `</select>
          </label>
          <label>Questions
            <select name="source">`)
		if data.AIAvailable {
			writeOption(w, "ai", "AI generated", data.Source)
		}
		writeOption(w, "static", "Question library", data.Source)
		write(w, `</select>
          </label>
          <label>Count
            <input name="questions" type="number" min="1" max="50" value="`, itoa(data.Questions), `"/>
          </label>
          <button type="submit" class="primary">Create game</button>
        </form>
        <div id="createResult" class="muted"></div>
      </section>
`)
		if len(data.Games) > 0 {
			write(w, `      <section class="panel">
        <h2>Open games</h2>
        <ul>
`)
			for _, game := range data.Games {
				write(w, `          <li><a href="/games/`, esc(game.ID), `">`, esc(game.Mode), `</a> <span class="muted">`,
					esc(game.Stage), ` &middot; `, itoa(game.Players), ` players</span></li>
`)
			}
			write(w, `        </ul>
      </section>
`)
		}
		write(w, `    <script>
      const form = document.getElementById("createForm");
      const result = document.getElementById("createResult");
      form.addEventListener("submit", async (event) => {
        event.preventDefault();
        result.textContent = "Creating game...";
        const body = {
          mode: form.elements.mode.value,
          source: form.elements.source.value,
          questions: Number(form.elements.questions.value)
        };
        const res = await fetch("/api/games", {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify(body)
        });
        const data = await res.json();
        if (!res.ok) {
          result.textContent = data.error || "Failed to create game.";
          return;
        }
        window.location.href = data.url;
      });
    </script>
`)
		pageFoot(w)
		return nil
	})
}

func writeOption(w io.Writer, value, label, selected string) {
	attr := ""
	if value == selected {
		attr = ` selected`
	}
	write(w, `<option value="`, esc(value), `"`, attr, `>`, esc(label), `</option>`)
}
