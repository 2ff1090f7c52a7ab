package utils

import (
	"log"
	"strings"
)

// LogEvent prints one standardized line per engine event, keyed by
// component/action/request_id. Detail should stay summarized; never log the
// full trip request payload.
func LogEvent(requestID, component, action, detail string) {
	log.Printf("[%s] action=%s request_id=%s detail=%s",
		strings.ToUpper(component), action, strings.TrimSpace(requestID), detail)
}
