// Package config loads settings for the vault server and the vault client.
//
// Sources are merged so that later ones override non-zero fields of earlier
// ones: environment, then flags (server only), then the JSON file named by
// CONFIG, -c or --config. [GetStructuredConfig] serves cmd/server and
// [GetClientConfig] serves cmd/client.
package config
