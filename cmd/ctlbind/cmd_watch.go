package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dhamidi/ctlbind/bindmap"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newWatchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Watch a directory and report binding map problems as files change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("ctlbind.watch")

			store := bindmap.New(args[0])
			w := bindmap.NewWatcher(store, interval, func(path string, m *bindmap.Map) {
				if m == nil {
					log.Noticef("%s removed", path)
					return
				}
				log.Noticef("%s: %d bindings", path, len(m.Entries))
				for _, d := range m.Diagnostics {
					if d.Severity == bindmap.SeverityWarning {
						log.Warning(d.String())
					} else {
						log.Error(d.String())
					}
				}
			})

			w.Start()
			defer w.Stop()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			return nil
		},
	}

	cmd.Flags().DurationVarP(&interval, "interval", "i", time.Second, "poll interval")

	return cmd
}
