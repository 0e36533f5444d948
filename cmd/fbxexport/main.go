package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"go.uber.org/zap"

	"github.com/meshtools/fbxexport/converter"
	"github.com/meshtools/fbxexport/export"
	"github.com/meshtools/fbxexport/fbx"
)

func defaultOutputFile(input string) string {
	ext := filepath.Ext(input)
	return input[0:len(input)-len(ext)] + ".fbx"
}

func loadScene(input string) (*export.Scene, error) {
	ext := strings.ToLower(filepath.Ext(input))
	if ext != ".glb" && ext != ".gltf" {
		return nil, fmt.Errorf("unsupported input type: %v", ext)
	}
	doc, err := gltf.Open(input)
	if err != nil {
		return nil, err
	}
	return converter.NewGLTFToSceneConverter(nil).Convert(doc)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s input.glb [output.fbx]\n", os.Args[0])
		flag.PrintDefaults()
	}
	scale := flag.Float64("scale", 0, "global scale (0:auto)")
	rotx := flag.Float64("rotx", 0, "rotate degrees around X")
	preset := flag.String("preset", "", "preset yaml file, or \"unity3d\"")
	creator := flag.String("creator", "", "creator string")
	timestamp := flag.String("timestamp", "", "fixed creation time (RFC3339) for reproducible output")
	dump := flag.Bool("dump", false, "dump the written file as text")
	verbose := flag.Bool("v", false, "verbose log")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return
	}
	input := flag.Arg(0)
	output := defaultOutputFile(input)
	if flag.NArg() > 1 {
		output = flag.Arg(1)
	}

	var opts export.Options
	if *preset == "unity3d" {
		opts = export.PresetUnity3D().Options()
	} else if *preset != "" {
		p, err := export.LoadPreset(*preset)
		if err != nil {
			log.Fatal(err)
		}
		opts = p.Options()
	}
	if *scale != 0 {
		opts.GlobalScale = *scale
	}
	if *rotx != 0 {
		m := mgl64.HomogRotate3DX(mgl64.DegToRad(*rotx))
		opts.GlobalMatrix = &m
	}
	if *creator != "" {
		opts.Creator = *creator
	}
	if *timestamp != "" {
		t, err := time.Parse(time.RFC3339, *timestamp)
		if err != nil {
			log.Fatal(err)
		}
		opts.CreationTime = &t
	}
	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		defer logger.Sync()
		opts.Logger = logger
	}

	scene, err := loadScene(input)
	if err != nil {
		log.Fatal(err)
	}

	log.Print("out: ", output)
	if err := export.Export(scene, output, &opts); err != nil {
		log.Fatal(err)
	}

	if *dump {
		root, _, err := fbx.Load(output)
		if err != nil {
			log.Fatal(err)
		}
		for _, n := range root.Children {
			n.Dump(os.Stdout, 0, false)
		}
	}
}
