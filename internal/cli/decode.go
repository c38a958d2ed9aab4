package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/guuid/v2"
)

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <uuid>...",
		Short: "Print the fields of UUIDs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, s := range args {
				u, err := a.factory.FromString(s)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := describe(out, u); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func describe(w io.Writer, u guuid.UUID) error {
	f := u.Fields()
	line := func(key string, value any) {
		fmt.Fprintf(w, "%-17s %v\n", key+":", value)
	}

	line("uuid", u)
	line("urn", u.URN())
	line("bytes", fmt.Sprintf("%x", u.Bytes()))
	if i, err := u.Integer(); err == nil {
		line("integer", i)
	}
	line("layout", f.Layout())
	line("variant", u.Variant())

	v, ok := u.Version()
	switch {
	case f.IsNil():
		line("version", "nil UUID")
		return nil
	case f.IsMax():
		line("version", "max UUID")
		return nil
	case !ok:
		line("version", "none")
	default:
		line("version", v)
	}

	line("time_low", f.TimeLow())
	line("time_mid", f.TimeMid())
	line("time_hi_version", f.TimeHiAndVersion())
	line("clock_seq", f.ClockSeq())
	line("node", f.Node())

	if ts, err := u.Timestamp(); err == nil {
		line("timestamp", ts)
		t, err := u.Time()
		if err != nil {
			return err
		}
		line("time", t.Format(time.RFC3339Nano))
	}
	if domain, err := u.LocalDomain(); err == nil {
		line("local_domain", domain)
		id, err := u.LocalIdentifier()
		if err != nil {
			return err
		}
		line("local_identifier", id)
	}
	return nil
}
