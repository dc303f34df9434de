package emit

import (
	"io"

	"fastqsim/internal/fastq"
	"fastqsim/internal/qual"
	"fastqsim/internal/sim"
)

// Config fixes every knob for one emission run.
type Config struct {
	ReadLength  int
	Number      int
	BadFraction float64 // fraction of records forced onto the degraded preset
	Seed        int64   // 0 = time-based
	Params      qual.Params
	Degraded    qual.Params // preset substituted for bad records
}

// Stats summarizes an emission run.
type Stats struct {
	Records     int     `json:"records"`
	Bases       int     `json:"bases"`
	BadRecords  int     `json:"bad_records"`
	MeanQuality float64 `json:"mean_quality"`
}

// Run writes cfg.Number four-line records to w and returns run totals.
// One random stream drives sequence, quality and bad-read selection, so a
// fixed seed reproduces the whole run.
func Run(w io.Writer, cfg Config) (Stats, error) {
	r := sim.NewRand(cfg.Seed)
	fw := fastq.NewWriter(w)

	var stats Stats
	qualSum := 0
	for i := 1; i <= cfg.Number; i++ {
		seq := sim.Make(r, cfg.ReadLength)

		p := cfg.Params
		if cfg.BadFraction > 0 && r.Float64() < cfg.BadFraction {
			p = cfg.Degraded
			stats.BadRecords++
		}
		quals := qual.Make(r, cfg.ReadLength, p)

		if err := fw.WriteRecord(fastq.Record{Name: fastq.SeqID(i), Seq: seq, Qual: quals}); err != nil {
			return stats, err
		}
		stats.Records++
		stats.Bases += len(seq)
		for _, c := range quals {
			qualSum += int(c) - qual.PhredOffset
		}
	}
	if stats.Bases > 0 {
		stats.MeanQuality = float64(qualSum) / float64(stats.Bases)
	}
	return stats, fw.Flush()
}
