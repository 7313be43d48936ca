// Package infrastructure holds cross-cutting runtime services, currently
// the structured logger shared by the ETL entrypoint and pipeline.
package infrastructure
