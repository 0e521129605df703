// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package seo builds hreflang alternate links and section anchors for public
// pages. Private paths (dashboard, screening, checklist, sign-in) get no
// alternate links.
package seo
