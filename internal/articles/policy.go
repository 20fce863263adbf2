package articles

import (
	"fmt"
	"strings"
)

// MutationPolicy decides when an edit or delete is applied to the local collection
type MutationPolicy string

// set of supported mutation policies
const (
	// PolicyConfirmed applies the local change only after the server acknowledges it
	PolicyConfirmed MutationPolicy = "confirmed"

	// PolicyWriteThrough applies the local change once the request completes,
	// even if the server rejected it
	PolicyWriteThrough MutationPolicy = "write-through"
)

// DefaultPolicy is the default mutation policy
const DefaultPolicy = PolicyConfirmed

var mutationPolicies = []MutationPolicy{PolicyConfirmed, PolicyWriteThrough}

// MutationPolicyValues returns the supported policies
func MutationPolicyValues() []string {
	out := make([]string, len(mutationPolicies))
	for i, policy := range mutationPolicies {
		out[i] = string(policy)
	}
	return out
}

// ParseMutationPolicy parses a mutation policy, an empty value being the default
func ParseMutationPolicy(value string) (MutationPolicy, error) {
	if value == "" {
		return DefaultPolicy, nil
	}
	for _, policy := range mutationPolicies {
		if string(policy) == value {
			return policy, nil
		}
	}
	return "", fmt.Errorf("unsupported mutation policy '%s', use one of: %s", value, strings.Join(MutationPolicyValues(), ", "))
}

// String returns the string representation
func (p MutationPolicy) String() string { return string(p) }

// Type returns the flag type
func (p MutationPolicy) Type() string { return "string" }

// Set validates and sets the policy value
func (p *MutationPolicy) Set(val string) error {
	policy, err := ParseMutationPolicy(val)
	if err != nil {
		return err
	}
	*p = policy
	return nil
}
