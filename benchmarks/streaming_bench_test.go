package benchmarks

import (
	"testing"

	"github.com/dcmxlabs/dcmx/anonymize"
	"github.com/dcmxlabs/dcmx/p10"
)

// tokensForDataSet renders ds's elements as the flat root-level
// DataElementHeader/DataElementValueBytes/End token sequence a Reader
// would have produced for an implicit-length data set with no sequences,
// the same shape p10's elementTokens helper builds.
func tokensForDataSet(b *testing.B, elemCount int) []p10.Token {
	b.Helper()
	ds := sampleDataSet(b, elemCount)

	toks := make([]p10.Token, 0, len(ds.Elements())*2+1)
	for _, elem := range ds.Elements() {
		value := elem.Value().Bytes()
		toks = append(toks,
			p10.DataElementHeader{Tag: elem.Tag(), VR: elem.VR(), Length: uint32(len(value))},
			p10.DataElementValueBytes{Tag: elem.Tag(), VR: elem.VR(), Chunk: value, Remaining: 0},
		)
	}
	toks = append(toks, p10.End{})
	return toks
}

func BenchmarkBuilderAddToken(b *testing.B) {
	toks := tokensForDataSet(b, 100)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		builder := p10.NewBuilder()
		for _, tok := range toks {
			if err := builder.AddToken(tok); err != nil {
				b.Fatal(err)
			}
		}
		if _, err := builder.DataSet(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAnonymizeTransform(b *testing.B) {
	ds := sampleDataSet(b, 100)
	toks := tokensForDataSet(b, 100)
	cfg := anonymize.NewConfig(anonymize.ProfileBasic)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		transform, err := anonymize.NewTransform(ds, cfg)
		if err != nil {
			b.Fatal(err)
		}
		for _, tok := range toks {
			if _, err := transform.AddToken(tok); err != nil {
				b.Fatal(err)
			}
		}
	}
}
