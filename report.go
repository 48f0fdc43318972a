package coeval

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// Report statuses.
const (
	StatusOK         = "OK"
	StatusIOError    = "IO_ERROR"
	StatusFormat     = "FORMAT_ERROR"
	StatusInfeasible = "INFEASIBLE"
)

// Report is the terminal artifact of one evaluation. Objective is only
// meaningful when Success is true.
type Report struct {
	Kind         string    `json:"kind"`
	InstanceFile string    `json:"instance_file,omitempty"`
	SolutionFile string    `json:"solution_file,omitempty"`
	Status       string    `json:"status"`
	Success      bool      `json:"success"`
	Objective    float64   `json:"objective"`
	Solution     *Solution `json:"solution,omitempty"`
	Messages     []string  `json:"messages,omitempty"`
	Time         string    `json:"time,omitempty"`
	System       SysInfo   `json:"system"`
}

// BuildReport aggregates the outcome of the pipeline stages. A parse error
// short-circuits everything, an infeasible outcome drops the objective, and
// only the all-success path carries a score.
func BuildReport(kind string, parseErr error, out *Outcome, obj float64) Report {
	rep := Report{Kind: kind}
	if parseErr != nil {
		var ferr *FormatError
		if errors.As(parseErr, &ferr) {
			rep.Status = StatusFormat
		} else {
			rep.Status = StatusIOError
		}
		rep.Messages = append(rep.Messages, parseErr.Error())
		return rep
	}
	if out != nil && !out.Feasible {
		rep.Status = StatusInfeasible
		rep.Messages = append(rep.Messages, out.String())
		return rep
	}
	rep.Status = StatusOK
	rep.Success = true
	rep.Objective = obj
	return rep
}

// EvaluateFiles runs the whole pipeline for one instance/solution file pair:
// parse instance, parse solution, validate, evaluate, report. Exactly one
// report is produced; failures are carried inside it, never panicked.
func EvaluateFiles(kind, instPath, solPath string) Report {
	start := time.Now()
	rep := evaluateFiles(kind, instPath, solPath)
	rep.Kind = kind
	rep.InstanceFile = instPath
	rep.SolutionFile = solPath
	rep.Time = time.Since(start).String()
	rep.System = GetSysInfo()
	return rep
}

func evaluateFiles(kind, instPath, solPath string) Report {
	instRaw, err := os.ReadFile(instPath)
	if err != nil {
		return BuildReport(kind, err, nil, 0)
	}
	solRaw, err := os.ReadFile(solPath)
	if err != nil {
		return BuildReport(kind, err, nil, 0)
	}
	inst, err := ParseInstance(string(instRaw), kind)
	if err != nil {
		return BuildReport(kind, err, nil, 0)
	}
	sol, err := ParseSolution(string(solRaw), inst)
	if err != nil {
		return BuildReport(kind, err, nil, 0)
	}
	out := Validate(inst, sol)
	if !out.Feasible {
		return BuildReport(kind, nil, &out, 0)
	}
	obj, err := Evaluate(inst, sol)
	if err != nil {
		// cannot happen after a feasible outcome; surfaced rather than hidden
		return BuildReport(kind, err, nil, 0)
	}
	rep := BuildReport(kind, nil, &out, obj)
	rep.Solution = sol
	return rep
}

// WriteReport stores a report as JSON, with number arrays kept on one line.
func WriteReport(rep Report, fileName string) error {
	jsonRep, err := json.MarshalIndent(rep, "", "\t")
	if err != nil {
		return err
	}
	jsonRep = []byte(SanitizeJsonArrayLineBreaks(string(jsonRep)))
	return os.WriteFile(fileName, jsonRep, 0644)
}

// GetSysInfo collects the basic system information embedded into reports.
func GetSysInfo() SysInfo {
	var info SysInfo
	hostStat, _ := host.Info()
	cpuStat, _ := cpu.Info()
	vmStat, _ := mem.VirtualMemory()
	if hostStat != nil {
		info.Platform = hostStat.Platform
	}
	if len(cpuStat) > 0 {
		info.CPU = cpuStat[0].ModelName
	}
	if vmStat != nil {
		info.RAM = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}
	return info
}
