package fixture

import (
	"log/slog"
	"strings"
)

// metaPrefix introduces an annotation line naming a new fixture file and its
// settings, e.g. "//- /lib.rs crate:foo deps:bar".
const metaPrefix = "//-"

// metaKeys lists every recognized annotation setting. Used both for
// dispatching and for suggestions on unknown keys.
var metaKeys = []string{"crate", "deps", "edition", "cfg", "env", "new_source_root"}

// parseMetaLine parses one annotation line into a Fixture with empty body
// text. The line must begin with the annotation marker.
//
//	//- /lib.rs crate:foo deps:bar,baz cfg:foo=a,bar=b env:OUTDIR=path/to,OTHER=foo
func parseMetaLine(line string) (Fixture, error) {
	meta := strings.TrimSpace(strings.TrimPrefix(line, metaPrefix))
	components := strings.Fields(meta)

	var path string
	if len(components) > 0 {
		path = components[0]
	}

	if !strings.HasPrefix(path, "/") {
		return Fixture{}, ErrFixturePath.With(slog.String("path", path))
	}

	entry := Fixture{Path: path}

	for _, component := range components[1:] {
		key, value, ok := splitOnce(component, ":")
		if !ok {
			return Fixture{}, ErrMetaToken.With(slog.String("entry", component))
		}

		switch key {
		case "crate":
			entry.Crate = value

		case "deps":
			entry.Deps = strings.Split(value, ",")

		case "edition":
			entry.Edition = value

		case "cfg":
			for _, cfg := range strings.Split(value, ",") {
				if k, v, ok := splitOnce(cfg, "="); ok {
					entry.CfgKeyValues = append(entry.CfgKeyValues, CfgPair{Key: k, Value: v})
				} else {
					entry.CfgAtoms = append(entry.CfgAtoms, cfg)
				}
			}

		case "env":
			for _, pair := range strings.Split(value, ",") {
				// Entries without '=' are skipped, not rejected.
				k, v, ok := splitOnce(pair, "=")
				if !ok {
					continue
				}

				if entry.Env == nil {
					entry.Env = make(map[string]string)
				}

				entry.Env[k] = v
			}

		case "new_source_root":
			entry.NewSourceRoot = true

		default:
			return Fixture{}, ErrUnknownMetaKey.
				With(slog.String("key", key)).
				withSuggestions(key, metaKeys)
		}
	}

	return entry, nil
}
