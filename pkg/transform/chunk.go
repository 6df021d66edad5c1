// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package transform

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
	log "github.com/sirupsen/logrus"
)

const (
	// TargetChunkBytes is the preferred amount of data handed to a single worker.
	TargetChunkBytes = 256 * 1024
	// MinChunkBytes bounds chunks from below, such that scheduling overhead does
	// not dominate on small inputs.
	MinChunkBytes = 4 * 1024
	// ElementBytes is the in-memory size of a gfp2.Element.
	ElementBytes = 8
)

// Hardware captures the parallelism available on this host, along with the
// chunk size derived from it.
type Hardware struct {
	// Number of logical cores reported for the host.
	Cores int
	// Number of elements per chunk.
	ChunkSize int
}

// hardware is computed on first use and never changes afterwards.  Concurrent
// first callers block until the single initialisation has completed.
var hardware = sync.OnceValue(func() Hardware {
	cores := LogicalCores()
	hw := Hardware{cores, chunkSizeFor(cores)}
	//
	log.Debugf("transform using chunks of %d elements over %d logical cores", hw.ChunkSize, hw.Cores)
	//
	return hw
})

// Detect returns the (cached) hardware configuration.
func Detect() Hardware {
	return hardware()
}

// ChunkSize returns the number of elements processed per parallel task.
func ChunkSize() int {
	return hardware().ChunkSize
}

// LogicalCores reports the number of logical cores on this host, as seen by
// cpuid.  Where cpuid cannot tell, the runtime's view is used instead.
func LogicalCores() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	//
	return runtime.NumCPU()
}

// chunkSizeFor scales the target chunk by the number of cores, capping at the
// target itself and clamping to the minimum, then converts bytes into
// elements.
func chunkSizeFor(cores int) int {
	bytes := max(MinChunkBytes, min(TargetChunkBytes, TargetChunkBytes*cores))
	//
	return bytes / ElementBytes
}
