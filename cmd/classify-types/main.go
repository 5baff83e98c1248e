package main

import (
	"fmt"
	"os"

	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/nuthatch/manifest"
	"github.com/pattyshack/nuthatch/platform"
	"github.com/pattyshack/nuthatch/platform/arm64"
)

func describe(classification platform.ArgumentClassification) string {
	switch {
	case classification.OnStack:
		return "stack"
	case classification.InFloatRegister:
		return "float registers"
	default:
		return "general registers"
	}
}

func main() {
	targetPlatform := arm64.NewPlatform(platform.Linux)
	spec := targetPlatform.CallSpec(platform.StandardCallConvention)

	for _, fileName := range os.Args[1:] {
		fmt.Println("=====================")
		fmt.Println("File name:", fileName)
		fmt.Println("---------------------")
		content, err := os.ReadFile(fileName)
		if err != nil {
			fmt.Println("ReadFile error:", err)
			continue
		}

		emitter := &parseutil.Emitter{}
		entries := manifest.Load(fileName, content, emitter)

		for _, entry := range entries {
			state := &platform.CallSiteState{}

			if !spec.IsValidArgType(entry.Type) {
				fmt.Printf("%s: not passable by native call\n", entry.Name)
				continue
			}

			classification := spec.ClassifyArgument(state, entry.Type)
			fmt.Printf(
				"%s: size=%d passed=%s",
				entry.Name,
				entry.Type.ByteSize(),
				describe(classification))

			if rep := spec.PreferredRepresentation(entry.Type, false); rep != nil {
				fmt.Printf(" as=%s", rep)
			}

			if spec.RequiresStructReturn(state, entry.Type) {
				fmt.Printf(" returned=struct-return")
			}

			fmt.Println()
		}

		errs := emitter.Errors()
		if len(errs) > 0 {
			fmt.Println("---------------------------")
			fmt.Println("Found", len(errs), "errors:")
			fmt.Println("---------------------------")
			for idx, err := range errs {
				fmt.Printf("error %d: %s\n", idx, err)
			}
		}
	}
}
