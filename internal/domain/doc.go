// Package domain contains the core model for fwkit: the parsed environment,
// the secrets schema (required keys, optional defaults) and error kinds.
//
// The domain does not depend on the filesystem, YAML or the CLI. Infra
// adapters map into and from these types.
package domain
