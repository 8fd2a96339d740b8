// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"fmt"
	"strconv"
	"strings"
)

/**
Format reference: https://prometheus.io/docs/instrumenting/exposition_formats/
For info on Prometheus labels, see: https://prometheus.io/docs/practices/naming/#labels
*/
func (r *inMemoryRegistry) ExportPrometheus() string {
	labelsString := r.labelsString()

	var rows []string
	for _, m := range r.sortedMetrics() {
		rows = append(rows, m.exportPrometheus(labelsString))
	}

	return strings.Join(rows, "")
}

func (r *inMemoryRegistry) labelsString() string {
	var labels []string
	if r.vcid > 0 {
		labels = append(labels, fmt.Sprintf("vcid=\"%s\"", strconv.FormatUint(uint64(r.vcid), 10)))
	}
	if r.contractName != "" {
		labels = append(labels, fmt.Sprintf("contract=\"%s\"", r.contractName))
	}
	return strings.Join(labels, ",")
}

func joinLabels(labels ...string) string {
	var nonEmpty []string
	for _, l := range labels {
		if l != "" {
			nonEmpty = append(nonEmpty, l)
		}
	}
	return strings.Join(nonEmpty, ",")
}

func prometheusRow(name string, typeString string, labelString string, value string) string {
	return prometheusType(name, typeString) + prometheusValue(name, labelString, value)
}

func prometheusValue(name string, labelString string, value string) string {
	if len(labelString) > 0 {
		return fmt.Sprintf("%s{%s} %s\n", name, labelString, value)
	}
	return fmt.Sprintf("%s %s\n", name, value)
}

func prometheusName(name string) string {
	return strings.Replace(name, ".", "_", -1)
}

func prometheusType(name string, typeString string) string {
	return fmt.Sprintf("# TYPE %s %s\n", prometheusName(name), typeString)
}
