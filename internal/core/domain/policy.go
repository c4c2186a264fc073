package domain

import "fmt"

// IDPolicy decides what a full-replacement update does with an id in the body
// that differs from the id in the path.
type IDPolicy string

const (
	// IDPolicyReassign moves the record to the body id.
	IDPolicyReassign IDPolicy = "reassign"
	// IDPolicyPreserve ignores the body id.
	IDPolicyPreserve IDPolicy = "preserve"
	// IDPolicyReject refuses the update as malformed.
	IDPolicyReject IDPolicy = "reject"
)

// ParseIDPolicy maps a configuration value to an IDPolicy. Empty means reassign.
func ParseIDPolicy(s string) (IDPolicy, error) {
	switch p := IDPolicy(s); p {
	case "":
		return IDPolicyReassign, nil
	case IDPolicyReassign, IDPolicyPreserve, IDPolicyReject:
		return p, nil
	default:
		return "", fmt.Errorf("unknown id policy %q", s)
	}
}

// Resolve returns the id the record should carry after an update addressed at
// pathID with bodyID in the payload.
func (p IDPolicy) Resolve(pathID, bodyID int64) (int64, error) {
	switch p {
	case IDPolicyPreserve:
		return pathID, nil
	case IDPolicyReject:
		if bodyID != pathID {
			return 0, fmt.Errorf("body id %d does not match path id %d", bodyID, pathID)
		}
		return pathID, nil
	default:
		return bodyID, nil
	}
}
