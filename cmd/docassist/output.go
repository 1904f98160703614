package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/doc-assist/internal/domain"
)

func (a *app) printJSON(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) printInfo(info domain.DocumentInfo) error {
	if a.jsonOut {
		return a.printJSON(info)
	}
	fmt.Fprintf(a.out, "File:  %s\n", info.FileName)
	fmt.Fprintf(a.out, "Type:  %s\n", info.FileType)
	fmt.Fprintf(a.out, "Size:  %s (%.2f MB)\n", info.FileSizeHuman, info.FileSizeMB)
	if info.PageCount != "" {
		fmt.Fprintf(a.out, "Pages: %s\n", info.PageCount)
	}
	return nil
}

func (a *app) printText(sess domain.Session) error {
	if a.jsonOut {
		return a.printJSON(struct {
			domain.Session
			Text string `json:"text"`
		}{sess, sess.ExtractedText})
	}
	_, err := fmt.Fprintln(a.out, sess.ExtractedText)
	return err
}

func (a *app) printSummary(result domain.SummaryResult) error {
	if a.jsonOut {
		return a.printJSON(result)
	}
	if !result.Success {
		fmt.Fprintln(os.Stderr, result.Error)
		return nil
	}
	fmt.Fprintln(a.out, result.Summary)
	fmt.Fprintf(a.out, "\n-- %s · %s · %s · %d tokens\n", result.SummaryType, result.Language, result.Model, result.TokensUsed)
	return nil
}

func (a *app) printKeyPoints(result domain.KeyPointsResult) error {
	if a.jsonOut {
		return a.printJSON(result)
	}
	if !result.Success {
		fmt.Fprintln(os.Stderr, result.Error)
		return nil
	}
	fmt.Fprintln(a.out, result.KeyPoints)
	fmt.Fprintf(a.out, "\n-- %d tokens\n", result.TokensUsed)
	return nil
}

func (a *app) printConversion(result domain.ConversionResult) error {
	if a.jsonOut {
		return a.printJSON(result)
	}
	if result.Success {
		fmt.Fprintf(a.out, "%s: %s\n", result.Message, result.OutputPath)
	}
	return nil
}
