// Package services contains the core business logic: content collection,
// evidence sampling, prompt rendering, persona synthesis and run
// orchestration. Services depend only on domain types and driven ports;
// all infrastructure is injected.
package services
