package cli

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Lzww0608/guuid/v2"
	"github.com/Lzww0608/guuid/v2/types"
)

type generateOptions struct {
	count     int
	namespace string
	name      string
	domain    string
	localID   string
	at        string
}

func newGenerateCmd(a *app) *cobra.Command {
	o := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [version]",
		Short: "Generate UUIDs (version 7 by default)",
		Long: `Generates one or more UUIDs of the given version:

  1  time and node based        5  name based, SHA-1
  2  DCE security               6  reordered time
  3  name based, MD5            7  unix epoch time
  4  random                     8  custom (random payload)`,
		Aliases: []string{"gen"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version := guuid.VersionTimeSorted
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || !guuid.Version(n).Valid() {
					return fmt.Errorf("invalid version %q: must be 1 to 8", args[0])
				}
				version = guuid.Version(n)
			}
			if o.count < 1 {
				return fmt.Errorf("invalid count %d: must be at least 1", o.count)
			}

			gen, err := o.generator(a.factory, version)
			if err != nil {
				return err
			}
			a.logger.Debug("generating", "version", int(version), "count", o.count)

			out := cmd.OutOrStdout()
			for i := 0; i < o.count; i++ {
				u, err := gen()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, u)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&o.count, "count", "n", 1, "number of UUIDs to generate")
	cmd.Flags().StringVar(&o.namespace, "ns", "dns", "namespace for versions 3 and 5: dns, url, oid, x500 or a UUID")
	cmd.Flags().StringVar(&o.name, "name", "", "name for versions 3 and 5")
	cmd.Flags().StringVar(&o.domain, "domain", "person", "local domain for version 2: person, group or org")
	cmd.Flags().StringVar(&o.localID, "id", "", "local identifier for version 2")
	cmd.Flags().StringVar(&o.at, "time", "", "RFC 3339 time for versions 1, 2, 6 and 7")
	return cmd
}

func (o *generateOptions) generator(f *guuid.Factory, v guuid.Version) (func() (guuid.UUID, error), error) {
	var (
		at    time.Time
		hasAt bool
	)
	if o.at != "" {
		t, err := time.Parse(time.RFC3339Nano, o.at)
		if err != nil {
			return nil, fmt.Errorf("invalid time %q: %w", o.at, err)
		}
		at, hasAt = t, true
	}
	var timeOpts []guuid.TimeOption
	if hasAt {
		timeOpts = append(timeOpts, guuid.At(at))
	}

	switch v {
	case guuid.VersionTimeBased:
		return func() (guuid.UUID, error) { return f.NewV1(timeOpts...) }, nil
	case guuid.VersionDCESecurity:
		domain, err := parseDomain(o.domain)
		if err != nil {
			return nil, err
		}
		if o.localID != "" {
			id, err := types.NewInteger(o.localID)
			if err != nil {
				return nil, err
			}
			timeOpts = append(timeOpts, guuid.LocalID(id))
		}
		return func() (guuid.UUID, error) { return f.NewV2(domain, timeOpts...) }, nil
	case guuid.VersionNameBasedMD5, guuid.VersionNameBasedSHA1:
		if o.name == "" {
			return nil, fmt.Errorf("--name is required for version %d", v)
		}
		ns, err := parseNamespace(f, o.namespace)
		if err != nil {
			return nil, err
		}
		if v == guuid.VersionNameBasedMD5 {
			return func() (guuid.UUID, error) { return f.NewV3(ns, o.name) }, nil
		}
		return func() (guuid.UUID, error) { return f.NewV5(ns, o.name) }, nil
	case guuid.VersionRandom:
		return f.NewV4, nil
	case guuid.VersionReorderedTime:
		return func() (guuid.UUID, error) { return f.NewV6(timeOpts...) }, nil
	case guuid.VersionTimeSorted:
		if hasAt {
			return func() (guuid.UUID, error) { return f.NewV7At(at) }, nil
		}
		return f.NewV7, nil
	}
	return func() (guuid.UUID, error) {
		b := make([]byte, 16)
		if _, err := rand.Read(b); err != nil {
			return guuid.UUID{}, err
		}
		return f.NewV8(b)
	}, nil
}

func parseDomain(s string) (guuid.Domain, error) {
	for _, d := range []guuid.Domain{guuid.DomainPerson, guuid.DomainGroup, guuid.DomainOrg} {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid domain %q: must be person, group or org", s)
}

func parseNamespace(f *guuid.Factory, s string) (guuid.UUID, error) {
	switch strings.ToLower(s) {
	case "dns":
		return guuid.NamespaceDNS, nil
	case "url":
		return guuid.NamespaceURL, nil
	case "oid":
		return guuid.NamespaceOID, nil
	case "x500":
		return guuid.NamespaceX500, nil
	}
	return f.FromString(s)
}
