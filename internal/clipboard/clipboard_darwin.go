//go:build darwin && cgo

package clipboard

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa

#import <Cocoa/Cocoa.h>
#include <stdlib.h>
#include <string.h>

static int isImageFile(NSString *path) {
    NSArray *exts = @[@"png", @"jpg", @"jpeg", @"gif", @"webp", @"tiff", @"tif", @"bmp"];
    return [exts containsObject:[[path pathExtension] lowercaseString]];
}

// imageFileURL returns the first copied Finder file that looks like an image, or nil.
static NSURL *imageFileURL(NSPasteboard *pb) {
    NSArray *urls = [pb readObjectsForClasses:@[[NSURL class]]
                                      options:@{NSPasteboardURLReadingFileURLsOnlyKey: @YES}];
    if (urls == nil || [urls count] == 0) {
        return nil;
    }
    NSURL *url = urls[0];
    return isImageFile([url path]) ? url : nil;
}

static unsigned long copyOut(NSData *data, void **out) {
    *out = NULL;
    if (data == nil || [data length] == 0) {
        return 0;
    }
    unsigned long len = [data length];
    *out = malloc(len);
    if (*out == NULL) {
        return 0;
    }
    memcpy(*out, [data bytes], len);
    return len;
}

int pasteboardHasImage(void) {
    @autoreleasepool {
        NSPasteboard *pb = [NSPasteboard generalPasteboard];
        if (imageFileURL(pb) != nil) {
            return 1;
        }
        return [pb canReadObjectForClasses:@[[NSImage class]] options:nil] ? 1 : 0;
    }
}

// readPasteboardImage copies the raw bytes of the best image representation
// on the pasteboard: a copied image file, PNG, TIFF (screenshots), or any
// NSImage flattened to TIFF. Returns 0 when no image is available.
unsigned long readPasteboardImage(void **out) {
    @autoreleasepool {
        NSPasteboard *pb = [NSPasteboard generalPasteboard];

        NSURL *url = imageFileURL(pb);
        if (url != nil) {
            return copyOut([NSData dataWithContentsOfURL:url], out);
        }

        NSData *png = [pb dataForType:NSPasteboardTypePNG];
        if (png != nil) {
            return copyOut(png, out);
        }

        NSData *tiff = [pb dataForType:NSPasteboardTypeTIFF];
        if (tiff != nil) {
            return copyOut(tiff, out);
        }

        NSArray *images = [pb readObjectsForClasses:@[[NSImage class]] options:nil];
        if (images != nil && [images count] > 0) {
            NSImage *image = images[0];
            return copyOut([image TIFFRepresentation], out);
        }

        *out = NULL;
        return 0;
    }
}

void freeImageData(void *data) {
    free(data);
}
*/
import "C"

import (
	"unsafe"
)

// The native pasteboard needs no setup.
func initPlatform() error {
	return nil
}

func hasImage() bool {
	return C.pasteboardHasImage() != 0
}

// readImageBytes reads image data from the macOS pasteboard using native APIs.
// TIFF payloads are decoded on the Go side.
func readImageBytes() ([]byte, error) {
	var dataPtr unsafe.Pointer
	length := C.readPasteboardImage(&dataPtr)

	if length == 0 || dataPtr == nil {
		return nil, nil
	}

	data := C.GoBytes(dataPtr, C.int(length))
	C.freeImageData(dataPtr)

	return data, nil
}
