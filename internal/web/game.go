package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// GameView is the shared screen for one lobby. The page is a shell; the
// live state arrives over the game websocket and is drawn by game.js.
func GameView(data GameData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageHead(w, "Trivia Titans")
		write(w, `      <div id="game" data-game-id="`, esc(data.GameID), `">
        <div id="notice" class="notice" hidden></div>
        <section id="setup" class="panel" hidden>
          <h2>Players</h2>
          <form id="playerForm" class="row">
            <input name="name" placeholder="Player name" maxlength="20" autocomplete="off" required/>
            <select name="avatar">`)
		for i, avatar := range data.Avatars {
			selected := ""
			if i == 0 {
				selected = " selected"
			}
			write(w, `<option value="`, esc(avatar.Key), `"`, selected, `>`, esc(avatar.Glyph), ` `, esc(avatar.Key), `</option>`)
		}
		write(w, `</select>
            <button type="submit" class="secondary">Add player</button>
          </form>
          <ul id="roster" class="players"></ul>
          <button id="startGame" class="primary">Start game</button>
        </section>
        <section id="loading" class="panel" hidden>
          <h2>Loading questions...</h2>
          <p id="slow" class="muted" hidden>This is taking longer than usual. Hang tight.</p>
        </section>
        <section id="play" class="panel" hidden>
          <div class="row">
            <span id="progress" class="muted"></span>
            <span id="category" class="tag"></span>
            <span id="timer" class="timer"></span>
          </div>
          <p id="question" class="question"></p>
          <p id="answer" class="correct" hidden></p>
          <div id="turn"></div>
          <ul id="answers" class="players"></ul>
          <div class="row" id="hostControls"></div>
        </section>
        <section id="finished" class="panel" hidden>
          <h2>Final standings</h2>
          <table id="standings"></table>
          <p><a id="resultsLink" href="#">See the full results</a></p>
          <button id="saveGame" class="secondary" hidden>Try saving again</button>
        </section>
        <section class="panel">
          <h3>Leaderboard</h3>
          <table id="leaderboard"></table>
        </section>
      </div>
    <script src="`, assetPath("/static/game.js"), `"></script>
`)
		pageFoot(w)
		return nil
	})
}
