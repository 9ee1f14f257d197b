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

// Package stage implements files of staged raw glossary records.
//
// Staged files let a conversion pipeline persist encoded raw records between
// passes, for example while sorting a glossary that does not fit in memory.
// A staged file is a sequence of records. Each record comes in two parts:
//  1. The size: a 32 bit integer size of the record in network byte order.
//  2. The record: an encoded raw record as returned by ToRaw.
//
// Whether records are compressed is not stored in the file and must be known
// by the reader. Independently of that, a staged file whose name ends in
// ".dz" is compressed as a whole in the dictzip format.
package stage
