// Package router resolves callback identifiers of the form
// <category>_<payload> to actions through an ordered rule table.
package router

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNoRoute is returned for identifiers that match no rule
var ErrNoRoute = errors.New("no route for identifier")

// Action names what a matched identifier should do
type Action string

// Rule maps identifiers to an action. A rule with Exact set matches only
// that identifier. Otherwise it matches any identifier starting with one of
// Prefixes whose payload is non-empty and not listed in Exclude.
type Rule struct {
	Action   Action
	Exact    string
	Prefixes []string
	Exclude  []string
}

// Match is a resolved identifier
type Match struct {
	Action  Action
	ID      string
	Prefix  string // prefix that matched, empty for exact rules
	Payload string // identifier with the prefix removed
}

// Router evaluates exact rules before prefix rules. Prefix rules are tried
// in the order they were given.
type Router struct {
	exact  map[string]Action
	prefix []Rule
}

// New builds a router from rules
func New(rules ...Rule) (*Router, error) {
	r := &Router{exact: make(map[string]Action)}
	for _, rule := range rules {
		if rule.Action == "" {
			return nil, fmt.Errorf("rule without action: %+v", rule)
		}
		switch {
		case rule.Exact != "" && len(rule.Prefixes) > 0:
			return nil, fmt.Errorf("rule %q: exact and prefix are mutually exclusive", rule.Action)
		case rule.Exact != "":
			if prev, dup := r.exact[rule.Exact]; dup {
				return nil, fmt.Errorf("identifier %q bound to both %q and %q", rule.Exact, prev, rule.Action)
			}
			r.exact[rule.Exact] = rule.Action
		case len(rule.Prefixes) > 0:
			r.prefix = append(r.prefix, rule)
		default:
			return nil, fmt.Errorf("rule %q has neither exact nor prefix", rule.Action)
		}
	}
	return r, nil
}

// Route resolves id to a match
func (r *Router) Route(id string) (Match, error) {
	if action, ok := r.exact[id]; ok {
		return Match{Action: action, ID: id}, nil
	}

	for _, rule := range r.prefix {
		for _, prefix := range rule.Prefixes {
			if !strings.HasPrefix(id, prefix) {
				continue
			}
			payload := strings.TrimPrefix(id, prefix)
			if payload == "" || excluded(rule.Exclude, payload) {
				continue
			}
			return Match{Action: rule.Action, ID: id, Prefix: prefix, Payload: payload}, nil
		}
	}

	return Match{}, fmt.Errorf("%w: %q", ErrNoRoute, id)
}

func excluded(list []string, payload string) bool {
	for _, v := range list {
		if v == payload {
			return true
		}
	}
	return false
}

// Categories are the known identifier categories
var Categories = []string{
	"menu", "day", "view", "add", "edit", "events", "ques",
	"dep_phone", "dep_sweets", "dep_badwords", "back",
}

// categoriesByLength lists categories longest first so that dep_phone wins
// over a shorter category sharing its start
var categoriesByLength = func() []string {
	out := append([]string(nil), Categories...)
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}()

// Parse splits id into its category and payload. ok is false when id does
// not start with a known category followed by "_".
func Parse(id string) (category, payload string, ok bool) {
	for _, c := range categoriesByLength {
		if strings.HasPrefix(id, c+"_") {
			return c, id[len(c)+1:], true
		}
	}
	return "", "", false
}
