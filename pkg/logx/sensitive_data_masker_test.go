package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mpin_check/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "PIN",
			input:  []byte(`{"pin":"1234"}`),
			output: []byte(`{"pin":"[MASKED]"}`),
		},
		{
			name:   "Empty PIN",
			input:  []byte(`{"pin":"","userDob":""}`),
			output: []byte(`{"pin":"[MASKED]","userDob":"[MASKED]"}`),
		},
		{
			name:   "Dates",
			input:  []byte(`{"pin": "0201", "userDob": "02/01/1998", "spouseDob": "1999-01-02", "anniversary": "31/10/2020"}`),
			output: []byte(`{"pin": "[MASKED]", "userDob": "[MASKED]", "spouseDob": "[MASKED]", "anniversary": "[MASKED]"}`),
		},
		{
			name:   "Verdict is not masked",
			input:  []byte(`{"strength":"WEAK","reasons":["COMMONLY_USED"]}`),
			output: []byte(`{"strength":"WEAK","reasons":["COMMONLY_USED"]}`),
		},
		{
			name:   "PIN capital letter",
			input:  []byte(`{"hello":"world","Pin":"123456"}`),
			output: []byte(`{"hello":"world","Pin":"[MASKED]"}`),
		},
		{
			name:   "Keys in any case",
			input:  []byte(`{"PIN":"8273","UserDob":"1990-05-17","SPOUSEDOB":"1991-01-01","Anniversary":"2020-10-31"}`),
			output: []byte(`{"PIN":"[MASKED]","UserDob":"[MASKED]","SPOUSEDOB":"[MASKED]","Anniversary":"[MASKED]"}`),
		},
		{
			name:   "Spaces around colon",
			input:  []byte("{\"pin\" : \"8273\",\n\"userDob\"\t:\n  \"1990-05-17\"}"),
			output: []byte("{\"pin\" : \"[MASKED]\",\n\"userDob\"\t:\n  \"[MASKED]\"}"),
		},
		{
			name:   "Non-string values",
			input:  []byte(`{"pin":1234,"userDob":null,"spouseDob":[1990,5,17],"anniversary":{"y":2020}}`),
			output: []byte(`{"pin":"[MASKED]","userDob":"[MASKED]","spouseDob":"[MASKED]","anniversary":"[MASKED]"}`),
		},
		{
			name:   "Escaped quote inside value",
			input:  []byte(`{"pin":"12\"34","strength":"WEAK"}`),
			output: []byte(`{"pin":"[MASKED]","strength":"WEAK"}`),
		},
		{
			name:   "Key as a value is not masked",
			input:  []byte(`{"field":"pin","pinned":"1234"}`),
			output: []byte(`{"field":"pin","pinned":"1234"}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
