// Copyright (c) 2026, The NetPyne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package labels

import "strconv"

var receptorsNames = [...]string{"AMPA", "NMDA", "GABAA", "GABAB", "Opsin", "ReceptorsN"}

func (ev Receptors) String() string {
	if ev < 0 || ev > ReceptorsN {
		return "Receptors(" + strconv.Itoa(int(ev)) + ")"
	}
	return receptorsNames[ev]
}

var eorINames = [...]string{"E", "I", "EorIN"}

func (ev EorI) String() string {
	if ev < 0 || ev > EorIN {
		return "EorI(" + strconv.Itoa(int(ev)) + ")"
	}
	return eorINames[ev]
}

var topClassNames = [...]string{"IT", "PT", "CT", "HTR", "Pva", "Sst", "TopClassN"}

func (ev TopClass) String() string {
	if ev < 0 || ev > TopClassN {
		return "TopClass(" + strconv.Itoa(int(ev)) + ")"
	}
	return topClassNames[ev]
}

var subClassNames = [...]string{"L4", "Other", "Vip", "Nglia", "Basket", "Chand", "Marti", "L4Sst", "SubClassN"}

func (ev SubClass) String() string {
	if ev < 0 || ev > SubClassN {
		return "SubClass(" + strconv.Itoa(int(ev)) + ")"
	}
	return subClassNames[ev]
}

var cellModelsNames = [...]string{"Izhi2007", "Friesen", "HH", "CellModelsN"}

func (ev CellModels) String() string {
	if ev < 0 || ev > CellModelsN {
		return "CellModels(" + strconv.Itoa(int(ev)) + ")"
	}
	return cellModelsNames[ev]
}
