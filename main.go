// battleship-terminal is a terminal battleship game against a computer
// opponent.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/collin-matz/battleship-terminal/config"
	"github.com/collin-matz/battleship-terminal/game"
	"github.com/collin-matz/battleship-terminal/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagName       = flag.String("name", "", "Player name")
	flagAutoPlace  = flag.Bool("auto", false, "Place your fleet automatically")
	flagQuickStart = flag.Bool("play", false, "Skip the menu and start a game immediately")
	flagSeed       = flag.Int64("seed", 0, "Random seed (0 uses the clock)")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var placement *ui.PlacementUI
var battle *ui.BattleUI
var cfg *config.Config
var rng *rand.Rand

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("battleship-terminal %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		panic(err)
	}
	if *flagName != "" {
		cfg.Gameplay.PlayerName = *flagName
	}

	seed := *flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng = rand.New(rand.NewSource(seed))

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ⚓ battleship ")

	// Placement screen
	placementHint := tview.NewTextView()
	placementHint.SetBorder(true)
	placementHint.SetBorderPadding(0, 0, 1, 1)
	placementHint.SetTitle(" Fleet ")
	placementHint.SetTitleAlign(tview.AlignLeft)
	placement = ui.NewPlacement(cfg, placementHint,
		func() {
			startBattle()
		},
		func() {
			rootPage.SwitchToPage("menu")
		},
	)
	placementFrame := ui.CreatePlacementLayout(placement.View, placementHint)

	// Battle screen
	battleHint := tview.NewTextView()
	battleHint.SetBorder(true)
	battleHint.SetBorderPadding(0, 0, 1, 1)
	battleHint.SetTitle(" Status ")
	battleHint.SetTitleAlign(tview.AlignLeft)
	battle = ui.NewBattle(cfg, battleHint,
		func(winner string) {
			showWinModal(winner)
		},
		func() {
			// User abort: leaves the battle without a winner.
			rootPage.SwitchToPage("menu")
		},
	)

	// Main menu
	menu := ui.NewMainMenu(cfg,
		func(name string, autoPlace bool) {
			newGame(name, autoPlace)
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
		func() {
			app.Stop()
		},
	)
	menuFrame := centerMenu(menu)

	// Color configuration screen
	colorConfig := ui.NewColorConfig(cfg, func() {
		placement.View.SetConfig(cfg)
		battle.SetConfig(cfg)
		rootPage.SwitchToPage("menu")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("menu")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("menu", menuFrame, true, true)
	rootPage.AddPage("placement", placementFrame, true, false)
	rootPage.AddPage("gameview", battle.Frame, true, false)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if *flagQuickStart {
		newGame(cfg.Gameplay.PlayerName, *flagAutoPlace)
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
}

// pendingGame carries the players between the placement screen and the
// battle screen.
var pendingGame struct {
	player   *game.Player
	computer *game.Player
}

// newGame creates both players, places the computer's fleet, and routes
// the human either through manual placement or straight into battle.
func newGame(name string, autoPlace bool) {
	player := game.NewPlayer(name, rng)
	computer := game.NewPlayer(cfg.Gameplay.ComputerName, rng)

	tries := cfg.Gameplay.AutoPlaceTries
	restarts := cfg.Gameplay.AutoPlaceRestarts
	if err := computer.AutoPlaceShips(tries, restarts); err != nil {
		showErrorModal(fmt.Errorf("computer fleet placement: %w", err))
		return
	}

	pendingGame.player = player
	pendingGame.computer = computer

	if autoPlace {
		if err := player.AutoPlaceShips(tries, restarts); err != nil {
			showErrorModal(fmt.Errorf("fleet placement: %w", err))
			return
		}
		startBattle()
		return
	}

	placement.Start(player)
	rootPage.SwitchToPage("placement")
	app.SetFocus(placement.View.Box)
}

// startBattle begins the turn loop once both fleets are placed.
func startBattle() {
	g := game.NewGame(pendingGame.player, pendingGame.computer)
	battle.Start(g)
	rootPage.SwitchToPage("gameview")
	app.SetFocus(battle.Board())
}

// showWinModal announces the winner and returns to the menu.
func showWinModal(winner string) {
	modal := tview.NewModal().
		SetText(fmt.Sprintf("%s wins!", winner)).
		AddButtons([]string{"Back to Menu"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.RemovePage("win")
			rootPage.SwitchToPage("menu")
		})
	rootPage.AddPage("win", modal, true, true)
}

// showErrorModal reports a recoverable failure and returns to the menu.
func showErrorModal(err error) {
	modal := tview.NewModal().
		SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.RemovePage("error")
			rootPage.SwitchToPage("menu")
		})
	rootPage.AddPage("error", modal, true, true)
}

// centerMenu centers the menu card in both directions.
func centerMenu(menu *ui.MainMenuUI) *tview.Flex {
	centered := ui.CreateCenteredFlex(menu, 56)
	frame := tview.NewFlex().SetDirection(tview.FlexRow)
	frame.AddItem(nil, 0, 1, false)
	frame.AddItem(centered, menu.Height(), 0, true)
	frame.AddItem(nil, 0, 1, false)
	return frame
}
