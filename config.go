package guuid

import (
	"fmt"
	"strings"

	"github.com/Lzww0608/guuid/v2/types"
)

// Config is a serializable description of a Factory.
type Config struct {
	// Layout is "rfc4122" (default) or "guid".
	Layout string `yaml:"layout"`

	// Codec names a CodecKind; ignored for the GUID layout.
	Codec string `yaml:"codec"`

	// Comb embeds a timestamp in version 4 UUIDs.
	Comb bool `yaml:"comb"`

	IgnoreSystemNode bool `yaml:"ignore_system_node"`

	// Node is a fixed node for time-based UUIDs, as hex digits.
	Node string `yaml:"node"`

	Degraded bool `yaml:"degraded"`
	Strict   bool `yaml:"strict"`
}

// Options translates c into Factory options.
func (c Config) Options() ([]Option, error) {
	var opts []Option

	switch strings.ToLower(c.Layout) {
	case "", LayoutRFC4122.String():
	case LayoutGUID.String():
		opts = append(opts, WithGUIDs())
	default:
		return nil, fmt.Errorf("%w: unknown layout %q", ErrInvalidArgument, c.Layout)
	}

	if c.Codec != "" {
		kind, err := ParseCodecKind(c.Codec)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithCodec(kind))
	}

	if c.Node != "" {
		h, err := types.NewHexadecimal(c.Node)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidNode, err)
		}
		p, err := NewStaticNodeProvider(h)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithNodeProvider(p))
	}

	if c.Comb {
		opts = append(opts, WithCombGenerator())
	}
	if c.IgnoreSystemNode {
		opts = append(opts, WithoutSystemNode())
	}
	if c.Degraded {
		opts = append(opts, WithDegraded())
	}
	if c.Strict {
		opts = append(opts, WithStrict())
	}
	return opts, nil
}
