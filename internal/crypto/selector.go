// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-pass-html/models"

// schemeSelector is the default [Selector]. Both schemes are stateless, so
// one instance of each is shared by all operations; keys are derived fresh on
// every Derive call.
type schemeSelector struct {
	legacy  Scheme
	current Scheme
}

// NewSelector returns a [Selector] whose legacy scheme uses the parameters of
// [models.DefaultFixedFields].
func NewSelector() Selector {
	return &schemeSelector{
		legacy:  NewLegacyScheme(models.DefaultFixedFields()),
		current: NewCurrentScheme(),
	}
}

// ForVersion implements [Selector].
func (s *schemeSelector) ForVersion(v models.FormatVersion) Scheme {
	if v.IsLegacyCipher() {
		return s.legacy
	}
	return s.current
}

// Current implements [Selector].
func (s *schemeSelector) Current() Scheme {
	return s.current
}
