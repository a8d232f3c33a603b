// Package branding centralizes product naming so user-facing surfaces
// stay consistent.
package branding

// AppName is the marketplace product name.
const AppName = "ACText"
