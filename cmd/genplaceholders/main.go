package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/raycaster/internal/logger"
	"chosenoffset.com/raycaster/internal/placeholders"
)

func main() {
	dir := flag.String("out", "assets/textures", "Directory to write the PNG textures to")
	flag.Parse()

	logger.Init(os.Stdout)
	log := logger.Log

	log.WithField("dir", *dir).Info("Generating placeholder wall textures")

	paths, err := placeholders.GenerateAndSave(*dir)
	if err != nil {
		log.WithError(err).Fatal("Failed to generate textures")
	}

	for _, p := range paths {
		log.WithFields(logrus.Fields{"path": p}).Info("Wrote texture")
	}
	log.Info("Done! Run the raycaster to see the textures in action.")
}
