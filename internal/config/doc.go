// Package config provides configuration loading, merging, and validation
// facilities for the danmu client and its development server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] for the request pipeline and
// CLI, and [GetDevServerConfig] for the development server. Both apply
// role-specific defaults on top of the merged [StructuredConfig].
package config
