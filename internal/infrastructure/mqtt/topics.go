package mqtt

import (
	"fmt"
	"strings"
)

// TopicRoot is the first level of every gateway topic.
const TopicRoot = "easycontrols"

// Topics builds MQTT topic strings for one site.
//
// Topic layout:
//
//	easycontrols/{site}/status        retained online/offline (LWT)
//	easycontrols/{site}/record        retained full record snapshot
//	easycontrols/{site}/view/{name}   retained projection snapshot
//	easycontrols/{site}/set/{name}    inbound parameter writes
//
// Use Topics{Site: "home"}.View("booster") rather than building strings by hand.
type Topics struct {
	Site string
}

func (t Topics) prefix() string {
	return fmt.Sprintf("%s/%s", TopicRoot, t.Site)
}

// =============================================================================
// Gateway → subscribers
// =============================================================================

// Status returns the availability topic, also used as Last Will.
func (t Topics) Status() string {
	return t.prefix() + "/status"
}

// Record returns the topic carrying the full canonical record.
func (t Topics) Record() string {
	return t.prefix() + "/record"
}

// View returns the topic for a single projection snapshot.
func (t Topics) View(name string) string {
	return fmt.Sprintf("%s/view/%s", t.prefix(), name)
}

// =============================================================================
// Subscribers → gateway
// =============================================================================

// Set returns the write topic for one parameter by canonical name.
func (t Topics) Set(name string) string {
	return fmt.Sprintf("%s/set/%s", t.prefix(), name)
}

// AllSets returns a wildcard matching every write topic.
func (t Topics) AllSets() string {
	return t.prefix() + "/set/+"
}

// ParseSet extracts the parameter name from a concrete write topic.
// It returns false if the topic does not belong to this site's set tree.
func (t Topics) ParseSet(topic string) (string, bool) {
	name, ok := strings.CutPrefix(topic, t.prefix()+"/set/")
	if !ok || name == "" || strings.Contains(name, "/") {
		return "", false
	}
	return name, true
}
