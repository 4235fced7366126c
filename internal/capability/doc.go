// Package capability probes the host for 3D rendering support and classifies
// it into a performance [Tier].
//
// The probe tries a version 2 context first and falls back to version 1:
//
//	host := capability.NewStaticHost(cfg.GetDevice())
//	report := capability.NewDetector(host).Detect()
//	if !report.Supported {
//	    // fall back to a non-3D presentation
//	}
//
// Failures never propagate: a context that cannot be created, or whose
// creation raises, is reported through [Report.Reason] with distinct
// messages so diagnostics can tell them apart.
package capability
