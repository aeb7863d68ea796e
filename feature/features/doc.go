// Package features derives the build feature list required by a pipeline
// configuration.
//
// Every configured component contributes a feature named
// "<section>-<type>", where some component types are collapsed onto a shared
// name through per-section exception tables (all GCP sinks need "gcp", both
// Prometheus sources need "prometheus"). The top-level `api` and
// `enterprise` blocks contribute "api" and "enterprise" when present.
//
// "transforms-log_to_metric" is never emitted: that capability always ships
// and must not be requested explicitly.
//
// # Usage
//
//	list, err := features.LoadAndExtract("vector.toml")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(strings.Join(list, ","))
package features
