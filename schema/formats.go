package schema

import (
	"fmt"
	"net/mail"
	"net/netip"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/idna"
)

// formatValidator resolves a format keyword value to its checker. The
// set is closed: an unrecognized format is a configuration error, not
// a validation finding.
func formatValidator(name string) (func(string) bool, error) {
	f, ok := formats[name]
	if !ok {
		return nil, fmt.Errorf("%w: unrecognized format %q", ErrSchema, name)
	}
	return f, nil
}

var formats = map[string]func(string) bool{
	"date-time":    isDateTime,
	"date":         isDate,
	"time":         isTime,
	"duration":     isDuration,
	"email":        isEmail,
	"idn-email":    isIDNEmail,
	"hostname":     isHostname,
	"idn-hostname": isIDNHostname,
	"uri":          isURI,
	"url":          isURI,
	"ipv4":         isIPv4,
	"ipv6":         isIPv6,
	"uuid":         isUUID,
	"guid":         isUUID,
}

func isDateTime(v string) bool {
	_, err := time.Parse(time.RFC3339, v)
	return err == nil
}

func isDate(v string) bool {
	_, err := time.Parse("2006-01-02", v)
	return err == nil
}

func isTime(v string) bool {
	for _, layout := range []string{
		"15:04:05Z07:00",
		"15:04:05.999999999Z07:00",
		"15:04:05",
		"15:04:05.999999999",
	} {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}

// isDuration checks an ISO 8601 duration: P with at least one
// component, date components before a T, time components after it.
func isDuration(v string) bool {
	if len(v) < 2 || v[0] != 'P' {
		return false
	}
	rest := v[1:]
	datePart, timePart, hasT := strings.Cut(rest, "T")
	if hasT && timePart == "" {
		return false
	}
	nDate, ok := durComponents(datePart, "YMWD")
	if !ok {
		return false
	}
	nTime := 0
	if hasT {
		nTime, ok = durComponents(timePart, "HMS")
		if !ok {
			return false
		}
	}
	return nDate+nTime > 0
}

// durComponents counts number+designator components, requiring the
// designators to appear in units order. Only the seconds component may
// carry a decimal fraction.
func durComponents(s, units string) (int, bool) {
	count := 0
	unitAt := -1
	for len(s) > 0 {
		i := 0
		for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
			i++
		}
		if i == 0 || i == len(s) {
			return 0, false
		}
		if strings.ContainsRune(s[:i], '.') && s[i] != 'S' {
			return 0, false
		}
		u := strings.IndexByte(units, s[i])
		if u <= unitAt {
			return 0, false
		}
		unitAt = u
		count++
		s = s[i+1:]
	}
	return count, true
}

func isEmail(v string) bool {
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Name != "" || addr.Address != v {
		return false
	}
	return true
}

func isIDNEmail(v string) bool {
	at := strings.LastIndexByte(v, '@')
	if at <= 0 || at == len(v)-1 {
		return false
	}
	return isIDNHostname(v[at+1:])
}

var hostnameRe = regexp.MustCompile(
	`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

func isHostname(v string) bool {
	return len(v) <= 253 && hostnameRe.MatchString(v)
}

func isIDNHostname(v string) bool {
	a, err := idna.Lookup.ToASCII(v)
	return err == nil && isHostname(a)
}

func isURI(v string) bool {
	u, err := url.Parse(v)
	return err == nil && u.IsAbs()
}

func isIPv4(v string) bool {
	a, err := netip.ParseAddr(v)
	return err == nil && a.Is4()
}

func isIPv6(v string) bool {
	a, err := netip.ParseAddr(v)
	return err == nil && a.Is6() && !a.Is4()
}

func isUUID(v string) bool {
	_, err := uuid.Parse(v)
	return err == nil
}
