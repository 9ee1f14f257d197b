// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package glossary

// Record is a glossary record. It is implemented by [*Entry],
// [*InMemoryResource] and [*SpooledResource]; use a type switch to tell
// them apart.
type Record interface {
	// Word returns the joined words.
	Word() string

	// Words returns the headword followed by alternate words.
	Words() []string

	// Defi returns the joined definitions.
	Defi() string

	// Defis returns the definitions.
	Defis() []string

	// DefiFormat returns the definition format.
	DefiFormat() Format

	// IsData returns true for resources.
	IsData() bool

	// ToRaw returns the encoded raw record.
	ToRaw(opts *Options) ([]byte, error)
}

var (
	_ Record   = (*Entry)(nil)
	_ Resource = (*InMemoryResource)(nil)
	_ Resource = (*SpooledResource)(nil)
)

// resourceDefi is the definition text shown for a resource.
func resourceDefi(fileName string) string {
	return "File: " + fileName
}

// resourceToRaw saves r into the options' TmpDataDir, if any, and encodes the
// resource's raw tuple.
func resourceToRaw(r Resource, opts *Options) ([]byte, error) {
	var path string
	if dir := opts.tmpDataDir(); dir != "" {
		var err error
		path, err = r.Save(dir)
		if err != nil {
			return nil, err
		}
	}
	return EncodeRaw(Raw{
		Word:   []byte(r.FileName()),
		Defi:   []byte(path),
		Format: FormatBinary,
	}, opts.compress())
}

// Word implements [Record.Word] and returns the file name.
func (r *InMemoryResource) Word() string { return r.fileName }

// Words implements [Record.Words].
func (r *InMemoryResource) Words() []string { return []string{r.fileName} }

// Defi implements [Record.Defi].
func (r *InMemoryResource) Defi() string { return resourceDefi(r.fileName) }

// Defis implements [Record.Defis].
func (r *InMemoryResource) Defis() []string { return []string{resourceDefi(r.fileName)} }

// DefiFormat implements [Record.DefiFormat] and returns [FormatBinary].
func (*InMemoryResource) DefiFormat() Format { return FormatBinary }

// IsData implements [Record.IsData].
func (*InMemoryResource) IsData() bool { return true }

// ToRaw implements [Record.ToRaw].
func (r *InMemoryResource) ToRaw(opts *Options) ([]byte, error) { return resourceToRaw(r, opts) }

// Word implements [Record.Word] and returns the file name.
func (r *SpooledResource) Word() string { return r.fileName }

// Words implements [Record.Words].
func (r *SpooledResource) Words() []string { return []string{r.fileName} }

// Defi implements [Record.Defi].
func (r *SpooledResource) Defi() string { return resourceDefi(r.fileName) }

// Defis implements [Record.Defis].
func (r *SpooledResource) Defis() []string { return []string{resourceDefi(r.fileName)} }

// DefiFormat implements [Record.DefiFormat] and returns [FormatBinary].
func (*SpooledResource) DefiFormat() Format { return FormatBinary }

// IsData implements [Record.IsData].
func (*SpooledResource) IsData() bool { return true }

// ToRaw implements [Record.ToRaw].
func (r *SpooledResource) ToRaw(opts *Options) ([]byte, error) { return resourceToRaw(r, opts) }
