package commands

import (
	"context"
	"io/ioutil"

	"github.com/battlesnakeio/snake/api"
	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/game"
	"github.com/battlesnakeio/snake/worker"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var spectateListen = ""

func init() {
	playCmd.Flags().StringVar(&spectateListen, "spectate", spectateListen, "address to serve the game api on for spectators, disabled when empty")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays snake in the terminal",
	Run: func(c *cobra.Command, args []string) {
		if err := play(); err != nil {
			log.WithError(err).Fatal("snake failed")
		}
	},
}

func play() error {
	s, err := openStore(backend, backendArgs)
	if err != nil {
		return err
	}
	defer closeStore(s)

	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to start terminal")
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
	termbox.SetOutputMode(termbox.Output256)

	// Anything logged to the terminal would be drawn over the board.
	if logFile == "" {
		out := log.StandardLogger().Out
		log.SetOutput(ioutil.Discard)
		defer log.SetOutput(out)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := game.New(ctx, s)
	var renderer game.Renderer = game.RendererFunc(render)
	var hub *api.Hub
	if spectateListen != "" {
		hub = api.NewHub()
		renderer = game.MultiRenderer{renderer, hub}
	}
	runner := worker.NewRunner(g, renderer, config.FrameInterval)
	go runner.Run(ctx)

	if hub != nil {
		srv := api.New(spectateListen, runner, hub)
		go func() {
			if err := srv.WaitForExit(); err != nil {
				log.WithError(err).
					WithField("listen", spectateListen).
					Error("spectator api failed")
			}
		}()
		defer srv.Shutdown(context.Background())
	}

	eventQueue := setupEventQueue()
	swipe := &swipeTracker{}
	for {
		select {
		case <-runner.Done():
			return nil
		case ev := <-eventQueue:
			switch {
			case ev.Type == termbox.EventError:
				return errors.Wrap(ev.Err, "terminal input failed")
			case ev.Type == termbox.EventResize:
				runner.Refresh()
			case isQuit(ev):
				cancel()
				<-runner.Done()
				return nil
			default:
				cmd, ok := commandForKey(ev)
				if !ok {
					cmd, ok = swipe.track(ev)
				}
				if !ok {
					continue
				}
				if err := runner.Send(ctx, cmd); err != nil {
					return err
				}
			}
		}
	}
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
