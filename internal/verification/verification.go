// Package verification verifies that the disassembled instructions recreate the input.
package verification

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrogolib/log"
)

// maxReportedDiffs is the number of mismatches that get logged individually.
const maxReportedDiffs = 10

// VerifyImage encodes every decoded instruction word of the image again and
// verifies that the result matches the input byte by byte. A trailing odd
// byte is emitted as data and is copied unchanged.
func VerifyImage(logger *log.Logger, image []byte) error {
	output := make([]byte, len(image))

	for offset := 0; offset < len(image); offset += 2 {
		if offset+1 >= len(image) {
			output[offset] = image[offset]
			break
		}

		ins := instruction.Decode(uint16(image[offset])<<8 | uint16(image[offset+1]))
		word := instruction.Encode(ins)
		output[offset] = byte(word >> 8)
		output[offset+1] = byte(word)
	}

	if err := checkBufferEqual(logger, image, output); err != nil {
		return fmt.Errorf("program image mismatch: %w", err)
	}
	return nil
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs <= maxReportedDiffs {
			logger.Warn("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
