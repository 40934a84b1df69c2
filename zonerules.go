package tformat

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode"
)

// zoneSources mirrors the search path the Go runtime itself tries when
// resolving $ZONEINFO is unset, adapted from the teacher's zones.go.
var zoneSources = []string{
	"/usr/share/zoneinfo/",
	"/usr/share/lib/zoneinfo/",
	"/usr/lib/locale/TZ/",
}

// fallbackZoneIDs is used when no tzdata directory is found on disk (a
// minimal or offline container, for instance), so the zone-id element still
// has a non-empty set of region IDs to build its prefix tree from.
var fallbackZoneIDs = []string{
	"UTC", "GMT",
	"America/New_York", "America/Chicago", "America/Denver", "America/Los_Angeles",
	"America/Sao_Paulo", "America/Mexico_City",
	"Europe/London", "Europe/Paris", "Europe/Berlin", "Europe/Moscow", "Europe/Madrid",
	"Asia/Tokyo", "Asia/Shanghai", "Asia/Kolkata", "Asia/Singapore", "Asia/Dubai",
	"Australia/Sydney", "Pacific/Auckland", "Africa/Cairo", "Africa/Johannesburg",
}

type systemZoneRules struct {
	ids []string
}

var (
	systemZoneRulesOnce sync.Once
	systemZoneRulesInst *systemZoneRules
)

// SystemZoneRules returns the process-wide ZoneRules backed by the Go
// runtime's IANA tzdata, per §4.12. The scan happens once; the result is
// shared for the lifetime of the process.
func SystemZoneRules() ZoneRules {
	systemZoneRulesOnce.Do(func() {
		ids := scanTzData()
		if len(ids) == 0 {
			ids = fallbackZoneIDs
		}
		systemZoneRulesInst = &systemZoneRules{ids: ids}
	})
	return systemZoneRulesInst
}

func (r *systemZoneRules) AvailableZoneIDs() []string { return r.ids }

func (r *systemZoneRules) IsValidZoneID(id string) bool {
	if id == "" || id == "Z" {
		return true
	}
	_, err := time.LoadLocation(id)
	return err == nil
}

func scanTzData() []string {
	sources := zoneSources
	if env := os.Getenv("ZONEINFO"); env != "" {
		sources = append([]string{env}, sources...)
	}

	for _, source := range sources {
		if ids := readTzDataDir(source); len(ids) > 0 {
			return ids
		}
	}
	return nil
}

func readTzDataDir(source string) []string {
	if _, err := os.Open(path.Join(source, "UTC")); err != nil {
		return nil
	}

	var out []string
	_ = filepath.Walk(source, func(p string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		name, err := filepath.Rel(source, p)
		if err != nil {
			return err
		}

		switch {
		case len(name) == 0,
			name[0] == '/',
			name[0] == '\\',
			strings.Contains(name, "."),
			unicode.IsLower(rune(name[0])):
			return nil
		}

		name = filepath.ToSlash(name)
		if _, err := time.LoadLocation(name); err == nil {
			out = append(out, name)
		}
		return nil
	})
	return out
}
