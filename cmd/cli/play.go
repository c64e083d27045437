package main

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/minaorangina/cardtable/engine"
	"github.com/minaorangina/cardtable/protocol"
)

const crazyEightsHelp = `Empty your hand before the CPU does. Match the top card's rank or the
active suit; an eight is always playable. Draw when you cannot play.`

const unoHelp = `Empty your hand before the CPU does. Match the top card's colour or value;
wilds are always playable. Skip and Reverse take another turn, +2 and +4
make the CPU draw and lose its turn.`

const solitaireHelp = `Build the four foundations up from Ace to King by suit. Tableau piles build
down in alternating colours and only a King may fill an empty pile.`

func playCmd(variant, short, long string) *cobra.Command {
	return &cobra.Command{
		Use:   variant,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			v, err := protocol.ParseVariant(variant)
			if err != nil {
				return err
			}

			seed := cfg.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			table, err := engine.NewTable(v, engine.TableOpts{
				Rand:     rand.New(rand.NewSource(seed)),
				CPUDelay: cfg.CPUDelay,
			})
			if err != nil {
				return err
			}

			fd := int(os.Stdout.Fd())
			colour := cfg.Colour && engine.IsTerminal(fd)
			renderer := engine.NewTextRenderer(os.Stdout, engine.TerminalWidth(fd), colour)

			log := cfg.Logger(os.Stderr).WithField("seed", seed)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			inbound := make(chan protocol.InboundMessage)
			go engine.ReadCommands(ctx, os.Stdin, os.Stdout, inbound)

			e, err := engine.New(engine.EngineOpts{
				Table:    table,
				Inbound:  inbound,
				Renderer: renderer,
				Log:      log,
				Tick:     cfg.Tick,
			})
			if err != nil {
				return err
			}

			if err := e.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
