// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// tokens.go - Semantic design tokens resolved through themes.
package styles

// =============================================================================
// CATEGORY TOKENS
// =============================================================================

// CategoryToken separates domain objects from each other. Categories
// carry no inherent meaning; components assign them to keep distinct
// things visually distinct.
type CategoryToken string

const (
	Cat1 CategoryToken = "cat_1"
	Cat2 CategoryToken = "cat_2"
	Cat3 CategoryToken = "cat_3"
	Cat4 CategoryToken = "cat_4"
	Cat5 CategoryToken = "cat_5"
	Cat6 CategoryToken = "cat_6"
	Cat7 CategoryToken = "cat_7"
	Cat8 CategoryToken = "cat_8"
)

// =============================================================================
// HIERARCHY TOKENS
// =============================================================================

// HierarchyToken expresses visual importance within a layout.
type HierarchyToken string

const (
	Primary    HierarchyToken = "primary"
	Secondary  HierarchyToken = "secondary"
	Tertiary   HierarchyToken = "tertiary"
	Quaternary HierarchyToken = "quaternary"
)

// =============================================================================
// STATUS TOKENS
// =============================================================================

// StatusToken expresses a state or condition.
type StatusToken string

const (
	StatusSuccess StatusToken = "success"
	StatusError   StatusToken = "error"
	StatusWarning StatusToken = "warning"
	StatusInfo    StatusToken = "info"
	StatusMuted   StatusToken = "muted"
	StatusRunning StatusToken = "running"
)

// =============================================================================
// EMPHASIS TOKENS
// =============================================================================

// EmphasisToken expresses text weight.
type EmphasisToken string

const (
	Strong EmphasisToken = "strong"
	Normal EmphasisToken = "normal"
	Subtle EmphasisToken = "subtle"
)

// =============================================================================
// TOKEN SETS
// =============================================================================

// The complete token sets, used to validate that a theme covers every
// token before it is accepted.

// AllCategories lists every category token.
func AllCategories() []CategoryToken {
	return []CategoryToken{Cat1, Cat2, Cat3, Cat4, Cat5, Cat6, Cat7, Cat8}
}

// AllHierarchies lists every hierarchy token.
func AllHierarchies() []HierarchyToken {
	return []HierarchyToken{Primary, Secondary, Tertiary, Quaternary}
}

// AllStatuses lists every status token.
func AllStatuses() []StatusToken {
	return []StatusToken{StatusSuccess, StatusError, StatusWarning, StatusInfo, StatusMuted, StatusRunning}
}

// AllEmphases lists every emphasis token.
func AllEmphases() []EmphasisToken {
	return []EmphasisToken{Strong, Normal, Subtle}
}
