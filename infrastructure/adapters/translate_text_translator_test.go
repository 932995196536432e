package adapters

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/translate"
	"github.com/aws/aws-sdk-go/service/translate/translateiface"

	"github.com/saransathish/Video-language-converter/application/ports/outbound"
	"github.com/saransathish/Video-language-converter/domain"
)

type fakeTranslateClient struct {
	translateiface.TranslateAPI

	inputs    []*translate.TextInput
	translate func(text string) string
	err       error
}

func (f *fakeTranslateClient) TextWithContext(_ aws.Context, input *translate.TextInput, _ ...request.Option) (*translate.TextOutput, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return nil, f.err
	}
	return &translate.TextOutput{
		TranslatedText: aws.String(f.translate(aws.StringValue(input.Text))),
	}, nil
}

func TestTranslateTextTranslator_Passthrough(t *testing.T) {
	client := &fakeTranslateClient{
		translate: func(string) string { return "hola mundo" },
	}

	translator := NewTranslateTextTranslator(client, NewZerologWrapper())

	got, err := translator.Translate(context.Background(), outbound.TranslateParams{
		Text:           "hello world",
		SourceLanguage: "en",
		TargetLanguage: "es",
	})
	if err != nil {
		t.Fatal("Translate failed:", err)
	}

	if got != "hola mundo" {
		t.Errorf("Expected the service result untouched, got %q", got)
	}
	if len(client.inputs) != 1 {
		t.Fatalf("Expected a single service call, got %d", len(client.inputs))
	}
	if aws.StringValue(client.inputs[0].Text) != "hello world" {
		t.Errorf("Input text was transformed: %q", aws.StringValue(client.inputs[0].Text))
	}
	if aws.StringValue(client.inputs[0].SourceLanguageCode) != "en" || aws.StringValue(client.inputs[0].TargetLanguageCode) != "es" {
		t.Errorf("Unexpected language codes: %+v", client.inputs[0])
	}
}

func TestTranslateTextTranslator_ChunksLongText(t *testing.T) {
	client := &fakeTranslateClient{
		translate: func(text string) string { return "T:" + text[:4] },
	}

	translator := NewTranslateTextTranslator(client, NewZerologWrapper())

	got, err := translator.Translate(context.Background(), outbound.TranslateParams{
		Text:           strings.Repeat("abcd", 2800), // 11200 chars
		SourceLanguage: "en",
		TargetLanguage: "es",
	})
	if err != nil {
		t.Fatal("Translate failed:", err)
	}

	if len(client.inputs) != 3 {
		t.Fatalf("Expected 3 chunked calls, got %d", len(client.inputs))
	}
	for _, input := range client.inputs {
		if size := len([]rune(aws.StringValue(input.Text))); size > translateChunkSize {
			t.Errorf("Chunk exceeds the service limit: %d", size)
		}
	}
	if got != "T:abcd T:abcd T:abcd" {
		t.Errorf("Chunks joined incorrectly: %q", got)
	}
}

func TestTranslateTextTranslator_ServiceError(t *testing.T) {
	client := &fakeTranslateClient{err: errors.New("UnsupportedLanguagePairException")}

	translator := NewTranslateTextTranslator(client, NewZerologWrapper())

	_, err := translator.Translate(context.Background(), outbound.TranslateParams{
		Text:           "hello",
		SourceLanguage: "en",
		TargetLanguage: "zz",
	})
	if !errors.Is(err, domain.ErrTranslationFailed) {
		t.Fatalf("Expected ErrTranslationFailed, got %v", err)
	}
}

func TestChunkText(t *testing.T) {
	chunks := chunkText("hello", 10)
	if len(chunks) != 1 || chunks[0] != "hello" {
		t.Errorf("Short text should be a single chunk: %v", chunks)
	}

	chunks = chunkText(strings.Repeat("é", 25), 10)
	if len(chunks) != 3 {
		t.Fatalf("Expected 3 chunks, got %d", len(chunks))
	}
	if chunks[2] != strings.Repeat("é", 5) {
		t.Errorf("Rune-unsafe split: %q", chunks[2])
	}
}
