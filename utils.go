/* utils.go
 * Helpers for parsing the entrypoint flags
 * Authors: Zachary Bower
 */

package main

import (
	"fmt"
	"strings"
)

// convertStrToBool parses the -test flag, which is a string so an invalid
// value can be reported instead of silently defaulting
// Preconditions: Receives a string containing either true or false (case insensitive)
// Postconditions: Returns the boolean value, or an error for anything else
func convertStrToBool(str string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean string")
}
