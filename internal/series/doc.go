// Package series provides the scalar time series type consumed by the
// embedding and forecasting pipeline.
//
// A [Series] is an ordered sequence of finite real numbers. Construction
// filters NaN and Inf values so that downstream numeric code never has to
// guard against them:
//
//	s := series.New([]float64{1.0, math.NaN(), 2.0}, "load")
//	s.Len() // 2
//
// CSV and stdin ingestion live here as well; see [LoadCSV] and [LoadReader].
package series
