// Command bmscap converts BMS chain telemetry streams into CSV.
//
// Input is either a previously captured serial log (convert) or a live
// serial connection to the chain controller (capture). Both modes share
// one frame pipeline; see internal/capture.
package main
